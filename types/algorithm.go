package types

import (
	"github.com/rarimo/certificate-transparency-go/asn1"
)

// Algorithm is the key algorithm family of an AlgorithmIdentifier.
type Algorithm uint8

const (
	RSA Algorithm = iota
	DSA
	EC
	Unknown
)

// Key algorithm OIDs.
var (
	OidRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	OidDSA = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}
	OidEC  = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
)

func (a Algorithm) String() string {
	switch a {
	case RSA:
		return "RSA"
	case DSA:
		return "DSA"
	case EC:
		return "EC"
	default:
		return "Unknown"
	}
}

// OID returns the algorithm OID, or nil for Unknown.
func (a Algorithm) OID() asn1.ObjectIdentifier {
	switch a {
	case RSA:
		return OidRSA
	case DSA:
		return OidDSA
	case EC:
		return OidEC
	default:
		return nil
	}
}

// AlgorithmFromOID maps an OID to its algorithm family. Unrecognized
// OIDs map to Unknown; the OID itself stays available on the
// identifier for diagnostics.
func AlgorithmFromOID(oid asn1.ObjectIdentifier) Algorithm {
	switch {
	case oid.Equal(OidRSA):
		return RSA
	case oid.Equal(OidDSA):
		return DSA
	case oid.Equal(OidEC):
		return EC
	default:
		return Unknown
	}
}
