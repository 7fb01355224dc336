package nuclide

import (
	"fmt"
	"strconv"
	"strings"
)

// AMUEnergyMeV is the atomic mass constant energy equivalent in MeV
// (CODATA 2018). It converts mass numbers to rest energies for the recoil
// correction applied during gamma destination matching.
const AMUEnergyMeV = 931.49410242

// symbols maps proton number to the element symbol used in ENSDF nuclide
// identifiers. Index 0 is the neutron.
var symbols = []string{
	"NN", "H", "HE", "LI", "BE", "B", "C", "N", "O", "F",
	"NE", "NA", "MG", "AL", "SI", "P", "S", "CL", "AR", "K",
	"CA", "SC", "TI", "V", "CR", "MN", "FE", "CO", "NI", "CU",
	"ZN", "GA", "GE", "AS", "SE", "BR", "KR", "RB", "SR", "Y",
	"ZR", "NB", "MO", "TC", "RU", "RH", "PD", "AG", "CD", "IN",
	"SN", "SB", "TE", "I", "XE", "CS", "BA", "LA", "CE", "PR",
	"ND", "PM", "SM", "EU", "GD", "TB", "DY", "HO", "ER", "TM",
	"YB", "LU", "HF", "TA", "W", "RE", "OS", "IR", "PT", "AU",
	"HG", "TL", "PB", "BI", "PO", "AT", "RN", "FR", "RA", "AC",
	"TH", "PA", "U", "NP", "PU", "AM", "CM", "BK", "CF", "ES",
	"FM", "MD", "NO", "LR", "RF", "DB", "SG", "BH", "HS", "MT",
	"DS", "RG", "CN", "NH", "FL", "MC", "LV", "TS", "OG",
}

// protonsBySymbol is the inverse of symbols, built once at init.
var protonsBySymbol = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		m[s] = z
	}
	return m
}()

// AZ splits an ENSDF nuclide identifier (for example " 60CO" or "152EU")
// into its mass number and proton number. Surrounding whitespace is ignored.
//
// Identifiers that carry no element symbol (a bare mass number) return
// protons == -1. An identifier with no mass digits or an unknown element
// symbol is an error.
func AZ(nucid string) (mass, protons int, err error) {
	s := strings.ToUpper(strings.TrimSpace(nucid))
	if s == "" {
		return 0, 0, fmt.Errorf("empty nuclide identifier")
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("nuclide identifier %q has no mass number", nucid)
	}
	mass, err = strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, fmt.Errorf("nuclide identifier %q: %w", nucid, err)
	}

	symbol := s[i:]
	if symbol == "" {
		return mass, -1, nil
	}
	z, ok := protonsBySymbol[symbol]
	if !ok {
		return 0, 0, fmt.Errorf("nuclide identifier %q has unknown element symbol %q", nucid, symbol)
	}
	return mass, z, nil
}

// ID formats a mass and proton number as a trimmed ENSDF nuclide identifier,
// for example ID(60, 27) == "60CO". Pass protons == -1 for a bare mass
// identifier.
func ID(mass, protons int) (string, error) {
	if mass <= 0 {
		return "", fmt.Errorf("invalid mass number %d", mass)
	}
	if protons == -1 {
		return strconv.Itoa(mass), nil
	}
	symbol, err := Symbol(protons)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(mass) + symbol, nil
}

// Symbol returns the element symbol for a proton number (0 is the neutron).
func Symbol(protons int) (string, error) {
	if protons < 0 || protons >= len(symbols) {
		return "", fmt.Errorf("no element with %d protons", protons)
	}
	return symbols[protons], nil
}
