package resources

import (
	"github.com/rarimo/keycodec/keys"
	"github.com/rarimo/keycodec/types"
)

// ECField is the JSON form of the underlying field of a specified
// curve. Exactly one of Prime and M/Basis is populated.
type ECField struct {
	// "prime" or "characteristic-two"
	Kind string `json:"kind"`
	// The prime modulus, decimal string. Prime fields only
	Prime *string `json:"prime,omitempty"`
	// The extension degree, decimal string. Characteristic-two fields only
	M *string `json:"m,omitempty"`
	// The basis representation. Characteristic-two fields only
	Basis *ECBasis `json:"basis,omitempty"`
}

// ECBasis is the JSON form of a characteristic-two basis.
type ECBasis struct {
	// "gaussian", "trinomial" or "pentanomial"
	Kind string   `json:"kind"`
	K    *string  `json:"k,omitempty"`
	Ks   []string `json:"ks,omitempty"`
}

// ECCurve is the JSON form of the curve coefficients.
type ECCurve struct {
	// The a coefficient field-element encoding, hex string
	A string `json:"a"`
	// The b coefficient field-element encoding, hex string
	B string `json:"b"`
	// The curve generation seed, hex string. Omitted when absent
	Seed *string `json:"seed,omitempty"`
}

// ECSpecifiedDomain is the JSON form of fully specified EC domain
// parameters.
type ECSpecifiedDomain struct {
	Field ECField `json:"field"`
	Curve ECCurve `json:"curve"`
	// The base point encoding, hex string
	Base string `json:"base"`
	// The base point order, decimal string
	Order string `json:"order"`
	// The cofactor, decimal string. Omitted when absent
	Cofactor *string `json:"cofactor,omitempty"`
}

// ECParameters is the JSON form of the ECParameters CHOICE.
type ECParameters struct {
	// "named", "implicit" or "specified"
	Kind string `json:"kind"`
	// The named curve OID, dotted decimal. Named variant only
	NamedCurve *string `json:"named_curve,omitempty"`
	// Human-readable curve name, when the OID is recognized
	CurveName *string            `json:"curve_name,omitempty"`
	Specified *ECSpecifiedDomain `json:"specified,omitempty"`
}

// ECPublicKey is the JSON form of a bare EC public key.
type ECPublicKey struct {
	// The point encoding, hex string
	Point string `json:"point"`
}

// ECPrivateKey is the JSON form of a SEC1 EC private key.
type ECPrivateKey struct {
	// The private scalar encoding, hex string
	K      string        `json:"k"`
	Params *ECParameters `json:"params,omitempty"`
	// The public point encoding, hex string. Omitted when absent
	PublicKey *string `json:"public_key,omitempty"`
}

func NewECField(field keys.ECField) ECField {
	switch f := field.(type) {
	case keys.ECPrimeField:
		prime := bigIntString(f.P)
		return ECField{Kind: "prime", Prime: &prime}
	case keys.ECCharTwoField:
		m := bigIntString(f.M)
		basis := NewECBasis(f.Basis)
		return ECField{Kind: "characteristic-two", M: &m, Basis: &basis}
	default:
		return ECField{Kind: "unknown"}
	}
}

func NewECBasis(basis keys.ECBasis) ECBasis {
	switch b := basis.(type) {
	case keys.ECGaussianBasis:
		return ECBasis{Kind: "gaussian"}
	case keys.ECTrinomialBasis:
		k := bigIntString(b.K)
		return ECBasis{Kind: "trinomial", K: &k}
	case keys.ECPentanomialBasis:
		return ECBasis{
			Kind: "pentanomial",
			Ks:   []string{bigIntString(b.K1), bigIntString(b.K2), bigIntString(b.K3)},
		}
	default:
		return ECBasis{Kind: "unknown"}
	}
}

func NewECCurve(curve keys.ECCurve) ECCurve {
	model := ECCurve{
		A: hexString(curve.A),
		B: hexString(curve.B),
	}
	if curve.Seed != nil {
		seed := hexString(curve.Seed)
		model.Seed = &seed
	}

	return model
}

func NewECSpecifiedDomain(domain keys.ECSpecifiedDomain) ECSpecifiedDomain {
	model := ECSpecifiedDomain{
		Field: NewECField(domain.Field),
		Curve: NewECCurve(domain.Curve),
		Base:  hexString(domain.Base),
		Order: bigIntString(domain.Order),
	}
	if domain.Cofactor != nil {
		cofactor := bigIntString(domain.Cofactor)
		model.Cofactor = &cofactor
	}

	return model
}

func NewECParameters(params keys.ECParameters) ECParameters {
	switch p := params.(type) {
	case keys.ECNamedCurve:
		oid := p.OID.String()
		model := ECParameters{Kind: "named", NamedCurve: &oid}
		if name, ok := types.NamedCurveName(p.OID); ok {
			model.CurveName = &name
		}
		return model
	case keys.ECImplicitCurve:
		return ECParameters{Kind: "implicit"}
	case keys.ECSpecifiedCurve:
		specified := NewECSpecifiedDomain(p.Domain)
		return ECParameters{Kind: "specified", Specified: &specified}
	default:
		return ECParameters{Kind: "unknown"}
	}
}

func NewECPublicKey(key keys.ECPublicKey) ECPublicKey {
	return ECPublicKey{Point: hexString(key.Point)}
}

func NewECPrivateKey(key keys.ECPrivateKey) ECPrivateKey {
	model := ECPrivateKey{K: hexString(key.K)}
	if key.Params != nil {
		params := NewECParameters(key.Params)
		model.Params = &params
	}
	if key.PublicKey != nil {
		pub := hexString(key.PublicKey)
		model.PublicKey = &pub
	}

	return model
}
