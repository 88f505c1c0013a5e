package types

import (
	"github.com/rarimo/certificate-transparency-go/asn1"
)

// Named curve OIDs commonly seen in the ECParameters slot.
var (
	OidCurveSecp224r1 = asn1.ObjectIdentifier{1, 3, 132, 0, 33}
	OidCurveSecp256r1 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	OidCurveSecp384r1 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	OidCurveSecp521r1 = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
	OidCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}

	OidCurveBrainpoolP256r1 = asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 7}
	OidCurveBrainpoolP384r1 = asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 11}
	OidCurveBrainpoolP512r1 = asn1.ObjectIdentifier{1, 3, 36, 3, 3, 2, 8, 1, 1, 13}
)

var namedCurves = map[string]string{
	OidCurveSecp224r1.String():       "secp224r1",
	OidCurveSecp256r1.String():       "secp256r1",
	OidCurveSecp384r1.String():       "secp384r1",
	OidCurveSecp521r1.String():       "secp521r1",
	OidCurveSecp256k1.String():       "secp256k1",
	OidCurveBrainpoolP256r1.String(): "brainpoolP256r1",
	OidCurveBrainpoolP384r1.String(): "brainpoolP384r1",
	OidCurveBrainpoolP512r1.String(): "brainpoolP512r1",
}

// NamedCurveName returns a human-readable curve name for a named curve
// OID. Decoding never requires a recognized curve; this lookup exists
// for diagnostics only.
func NamedCurveName(oid asn1.ObjectIdentifier) (string, bool) {
	name, ok := namedCurves[oid.String()]
	return name, ok
}
