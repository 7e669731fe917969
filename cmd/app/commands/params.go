package commands

import (
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// RunParams prints the key parameters in use.
func RunParams(streams IOTuple, params rsaDomain.KeyParams, format string) error {
	format, err := parseFormat(format)
	if err != nil {
		return err
	}

	if format == FormatJSON {
		return writeJSON(streams.Writer, params)
	}

	p := &printer{w: streams.Writer}
	p.printf("p   = %d\n", params.P)
	p.printf("q   = %d\n", params.Q)
	p.printf("n   = %d (p*q)\n", params.N)
	p.printf("phi = %d ((p-1)*(q-1))\n", params.Phi)
	p.printf("e   = %d (public exponent)\n", params.E)
	p.printf("d   = %d (private exponent, e*d mod phi = 1)\n", params.D)
	return p.err
}
