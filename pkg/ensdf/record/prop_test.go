package record

import (
	"strings"
	"testing"

	"nucleura/helios/pkg/ensdf/ensdferr"
)

// contLine fakes a continuation card with the given text starting at
// column 9.
func contLine(text string) string {
	return strings.Repeat(" ", 9) + text
}

func TestLoadPropertiesAssignments(t *testing.T) {
	props := map[string]string{}
	err := loadProperties(props, []string{
		contLine("MOM=GS$TYP=B+"),
		contLine("XREF=A"),
	})
	if err != nil {
		t.Fatalf("loadProperties() error = %v", err)
	}
	want := map[string]string{"MOM": "GS", "TYP": "B+", "XREF": "A"}
	for k, v := range want {
		if props[k] != v {
			t.Errorf("props[%q] = %q, want %q", k, props[k], v)
		}
	}
}

func TestLoadPropertiesSymbolStops(t *testing.T) {
	props := map[string]string{}
	err := loadProperties(props, []string{
		contLine("T<0.3$MOM=GS"),
		contLine("TYP=B+"),
	})
	if err != nil {
		t.Fatalf("loadProperties() error = %v", err)
	}
	if props["T"] != "<0.3" {
		t.Errorf("props[T] = %q, want %q", props["T"], "<0.3")
	}
	// Everything after the relational entry is abandoned, including
	// later cards.
	if _, ok := props["MOM"]; ok {
		t.Error("props[MOM] set; entries after a stop must be discarded")
	}
	if _, ok := props["TYP"]; ok {
		t.Error("props[TYP] set; cards after a stop must be discarded")
	}
}

func TestLoadPropertiesGreaterThan(t *testing.T) {
	props := map[string]string{}
	if err := loadProperties(props, []string{contLine("IB>12")}); err != nil {
		t.Fatalf("loadProperties() error = %v", err)
	}
	if props["IB"] != ">12" {
		t.Errorf("props[IB] = %q, want %q", props["IB"], ">12")
	}
}

func TestLoadPropertiesRelationalCode(t *testing.T) {
	props := map[string]string{}
	err := loadProperties(props, []string{
		contLine("T1/2 GT 5 S$MOM=GS"),
	})
	if err != nil {
		t.Fatalf("loadProperties() error = %v", err)
	}
	if props["T1/2"] != "5 S GT" {
		t.Errorf("props[T1/2] = %q, want %q", props["T1/2"], "5 S GT")
	}
	if _, ok := props["MOM"]; ok {
		t.Error("props[MOM] set; entries after a stop must be discarded")
	}
}

func TestLoadPropertiesQuestionStops(t *testing.T) {
	props := map[string]string{}
	err := loadProperties(props, []string{
		contLine("FL?$MOM=GS"),
	})
	if err != nil {
		t.Fatalf("loadProperties() error = %v", err)
	}
	if props["FL"] != "?" {
		t.Errorf("props[FL] = %q, want %q", props["FL"], "?")
	}
	if _, ok := props["MOM"]; ok {
		t.Error("props[MOM] set; entries after a stop must be discarded")
	}
}

func TestLoadPropertiesInvalidEntry(t *testing.T) {
	props := map[string]string{}
	err := loadProperties(props, []string{contLine("NOT A PROPERTY")})
	if err == nil {
		t.Fatal("loadProperties() error = nil, want invalid-property error")
	}
	if !ensdferr.IsKind(err, ensdferr.KindInvalidProperty) {
		t.Errorf("error = %v, want kind %q", err, ensdferr.KindInvalidProperty)
	}
}

func TestLoadPropertiesSkipsEmptyEntries(t *testing.T) {
	props := map[string]string{}
	if err := loadProperties(props, []string{contLine("$$MOM=GS$")}); err != nil {
		t.Fatalf("loadProperties() error = %v", err)
	}
	if props["MOM"] != "GS" {
		t.Errorf("props[MOM] = %q, want %q", props["MOM"], "GS")
	}
}
