package keys

import (
	"fmt"
	"math/big"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rarimo/certificate-transparency-go/asn1"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// Field type and basis OIDs from ANSI X9.62 (RFC 5480 / SEC1).
var (
	oidPrimeField   = asn1.ObjectIdentifier{1, 2, 840, 10045, 1, 1}
	oidCharTwoField = asn1.ObjectIdentifier{1, 2, 840, 10045, 1, 2}

	oidGaussianBasis    = asn1.ObjectIdentifier{1, 2, 840, 10045, 1, 2, 3, 1}
	oidTrinomialBasis   = asn1.ObjectIdentifier{1, 2, 840, 10045, 1, 2, 3, 2}
	oidPentanomialBasis = asn1.ObjectIdentifier{1, 2, 840, 10045, 1, 2, 3, 3}
)

const ecVersion = 1

// ECField is the underlying finite field of a specified curve: either
// a prime field or a characteristic-two extension field.
type ECField interface {
	ecField()
}

// ECPrimeField is GF(p).
type ECPrimeField struct {
	P *big.Int
}

// ECCharTwoField is GF(2^m) with one of the three basis representations.
type ECCharTwoField struct {
	M     *big.Int
	Basis ECBasis
}

func (ECPrimeField) ecField()   {}
func (ECCharTwoField) ecField() {}

// ECBasis is the polynomial basis of a characteristic-two field.
type ECBasis interface {
	ecBasis()
}

// ECGaussianBasis is the Gaussian normal basis; it carries no parameters.
type ECGaussianBasis struct{}

// ECTrinomialBasis is the basis x^m + x^k + 1.
type ECTrinomialBasis struct {
	K *big.Int
}

// ECPentanomialBasis is the basis x^m + x^k3 + x^k2 + x^k1 + 1.
type ECPentanomialBasis struct {
	K1 *big.Int
	K2 *big.Int
	K3 *big.Int
}

func (ECGaussianBasis) ecBasis()    {}
func (ECTrinomialBasis) ecBasis()   {}
func (ECPentanomialBasis) ecBasis() {}

// ECCurve carries the field-element encodings of the curve
// coefficients. Seed is nil when absent.
type ECCurve struct {
	A    []byte
	B    []byte
	Seed []byte
}

// ECSpecifiedDomain is a fully specified set of EC domain parameters.
// Cofactor is nil when absent.
type ECSpecifiedDomain struct {
	Field    ECField
	Curve    ECCurve
	Base     []byte
	Order    *big.Int
	Cofactor *big.Int
}

// ECParameters is the ECParameters CHOICE: a named curve, implicitly
// inherited parameters, or a specified domain.
type ECParameters interface {
	ecParameters()
}

// ECNamedCurve references curve parameters by OID.
type ECNamedCurve struct {
	OID asn1.ObjectIdentifier
}

// ECImplicitCurve indicates parameters inherited from elsewhere.
type ECImplicitCurve struct{}

// ECSpecifiedCurve carries the domain parameters inline.
type ECSpecifiedCurve struct {
	Domain ECSpecifiedDomain
}

func (ECNamedCurve) ecParameters()     {}
func (ECImplicitCurve) ecParameters()  {}
func (ECSpecifiedCurve) ecParameters() {}

// ECPublicKey is an encoded curve point. The point octets are not
// interpreted.
type ECPublicKey struct {
	Point []byte
}

// ECPrivateKey is a SEC1 private key. Params and PublicKey are nil
// when the corresponding optional slot is absent.
type ECPrivateKey struct {
	K         []byte
	Params    ECParameters
	PublicKey []byte
}

type ecFieldID struct {
	FieldType  asn1.ObjectIdentifier
	Parameters asn1.RawValue
}

type ecCharTwo struct {
	M          *big.Int
	Basis      asn1.ObjectIdentifier
	Parameters asn1.RawValue
}

type ecPentanomial struct {
	K1 *big.Int
	K2 *big.Int
	K3 *big.Int
}

type ecCurve struct {
	A    []byte
	B    []byte
	Seed asn1.BitString `asn1:"optional"`
}

type ecSpecifiedDomain struct {
	Version  int
	FieldID  ecFieldID
	Curve    ecCurve
	Base     []byte
	Order    *big.Int
	Cofactor *big.Int `asn1:"optional"`
}

type ecPrivateKey struct {
	Version    int
	PrivateKey []byte
	Params     asn1.RawValue  `asn1:"optional,explicit,tag:0"`
	PublicKey  asn1.BitString `asn1:"optional,explicit,tag:1"`
}

func marshalECField(f ECField) (ecFieldID, error) {
	switch v := f.(type) {
	case ECPrimeField:
		params, err := asn1.Marshal(v.P)
		if err != nil {
			return ecFieldID{}, errors.Wrap(err, "failed to marshal prime field modulus")
		}
		return ecFieldID{FieldType: oidPrimeField, Parameters: asn1.RawValue{FullBytes: params}}, nil
	case ECCharTwoField:
		raw := ecCharTwo{M: v.M}
		switch b := v.Basis.(type) {
		case ECGaussianBasis:
			raw.Basis = oidGaussianBasis
			raw.Parameters = asn1.NullRawValue
		case ECTrinomialBasis:
			params, err := asn1.Marshal(b.K)
			if err != nil {
				return ecFieldID{}, errors.Wrap(err, "failed to marshal trinomial basis")
			}
			raw.Basis = oidTrinomialBasis
			raw.Parameters = asn1.RawValue{FullBytes: params}
		case ECPentanomialBasis:
			params, err := asn1.Marshal(ecPentanomial{K1: b.K1, K2: b.K2, K3: b.K3})
			if err != nil {
				return ecFieldID{}, errors.Wrap(err, "failed to marshal pentanomial basis")
			}
			raw.Basis = oidPentanomialBasis
			raw.Parameters = asn1.RawValue{FullBytes: params}
		default:
			return ecFieldID{}, errors.New("unknown field basis")
		}
		params, err := asn1.Marshal(raw)
		if err != nil {
			return ecFieldID{}, errors.Wrap(err, "failed to marshal characteristic-two field")
		}
		return ecFieldID{FieldType: oidCharTwoField, Parameters: asn1.RawValue{FullBytes: params}}, nil
	default:
		return ecFieldID{}, errors.New("unknown field type")
	}
}

func parseECBasis(oid asn1.ObjectIdentifier, params asn1.RawValue) (ECBasis, error) {
	switch {
	case oid.Equal(oidGaussianBasis):
		if params.Class != asn1.ClassUniversal || params.Tag != asn1.TagNull || len(params.Bytes) != 0 {
			return nil, errors.New("field basis type and parameters doesn't match")
		}
		return ECGaussianBasis{}, nil
	case oid.Equal(oidTrinomialBasis):
		if params.Class != asn1.ClassUniversal || params.Tag != asn1.TagInteger || params.IsCompound {
			return nil, errors.New("field basis type and parameters doesn't match")
		}
		var k *big.Int
		if _, err := asn1.Unmarshal(params.FullBytes, &k); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal trinomial basis")
		}
		return ECTrinomialBasis{K: k}, nil
	case oid.Equal(oidPentanomialBasis):
		if params.Class != asn1.ClassUniversal || params.Tag != asn1.TagSequence || !params.IsCompound {
			return nil, errors.New("field basis type and parameters doesn't match")
		}
		var raw ecPentanomial
		if _, err := asn1.Unmarshal(params.FullBytes, &raw); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal pentanomial basis")
		}
		return ECPentanomialBasis{K1: raw.K1, K2: raw.K2, K3: raw.K3}, nil
	default:
		return nil, errors.New(fmt.Sprintf("unsupported field basis %s", oid))
	}
}

func parseECField(raw ecFieldID) (ECField, error) {
	switch {
	case raw.FieldType.Equal(oidPrimeField):
		if raw.Parameters.Class != asn1.ClassUniversal || raw.Parameters.Tag != asn1.TagInteger || raw.Parameters.IsCompound {
			return nil, errors.New("field type and parameters doesn't match")
		}
		var p *big.Int
		if _, err := asn1.Unmarshal(raw.Parameters.FullBytes, &p); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal prime field modulus")
		}
		return ECPrimeField{P: p}, nil
	case raw.FieldType.Equal(oidCharTwoField):
		if raw.Parameters.Class != asn1.ClassUniversal || raw.Parameters.Tag != asn1.TagSequence || !raw.Parameters.IsCompound {
			return nil, errors.New("field type and parameters doesn't match")
		}
		var charTwo ecCharTwo
		if _, err := asn1.Unmarshal(raw.Parameters.FullBytes, &charTwo); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal characteristic-two field")
		}
		basis, err := parseECBasis(charTwo.Basis, charTwo.Parameters)
		if err != nil {
			return nil, err
		}
		return ECCharTwoField{M: charTwo.M, Basis: basis}, nil
	default:
		return nil, errors.New(fmt.Sprintf("unsupported field type %s", raw.FieldType))
	}
}

func (c ECCurve) Validate() error {
	return validation.Errors{
		"a": validation.Validate(c.A, validation.Required),
		"b": validation.Validate(c.B, validation.Required),
	}.Filter()
}

func marshalECCurve(c ECCurve) ecCurve {
	raw := ecCurve{A: c.A, B: c.B}
	if c.Seed != nil {
		raw.Seed = asn1.BitString{Bytes: c.Seed, BitLength: len(c.Seed) * 8}
	}
	return raw
}

func parseECCurve(raw ecCurve) ECCurve {
	curve := ECCurve{A: raw.A, B: raw.B}
	if raw.Seed.Bytes != nil {
		curve.Seed = raw.Seed.Bytes
	}
	return curve
}

func (d ECSpecifiedDomain) Validate() error {
	return validation.Errors{
		"field": validation.Validate(d.Field, validation.Required),
		"curve": d.Curve.Validate(),
		"base":  validation.Validate(d.Base, validation.Required),
		"order": validation.Validate(d.Order, validation.Required),
	}.Filter()
}

func marshalECSpecifiedDomain(d ECSpecifiedDomain) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid EC specified domain")
	}

	fieldID, err := marshalECField(d.Field)
	if err != nil {
		return nil, err
	}

	return asn1.Marshal(ecSpecifiedDomain{
		Version:  ecVersion,
		FieldID:  fieldID,
		Curve:    marshalECCurve(d.Curve),
		Base:     d.Base,
		Order:    d.Order,
		Cofactor: d.Cofactor,
	})
}

func unmarshalECSpecifiedDomain(der []byte) (ECSpecifiedDomain, error) {
	var raw ecSpecifiedDomain
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return ECSpecifiedDomain{}, errors.Wrap(err, "failed to unmarshal EC specified domain")
	}
	if len(rest) != 0 {
		return ECSpecifiedDomain{}, errors.New("EC: specified domain with non empty leftover")
	}
	if raw.Version != ecVersion {
		return ECSpecifiedDomain{}, errors.New(fmt.Sprintf("EC: specified domain version %d not supported", raw.Version))
	}

	field, err := parseECField(raw.FieldID)
	if err != nil {
		return ECSpecifiedDomain{}, err
	}

	return ECSpecifiedDomain{
		Field:    field,
		Curve:    parseECCurve(raw.Curve),
		Base:     raw.Base,
		Order:    raw.Order,
		Cofactor: raw.Cofactor,
	}, nil
}

// MarshalECParameters DER-encodes the ECParameters CHOICE.
func MarshalECParameters(p ECParameters) ([]byte, error) {
	switch v := p.(type) {
	case ECNamedCurve:
		if v.OID == nil {
			return nil, errors.New("invalid EC parameters: named curve OID is empty")
		}
		return asn1.Marshal(v.OID)
	case ECImplicitCurve:
		return asn1.NullBytes, nil
	case ECSpecifiedCurve:
		return marshalECSpecifiedDomain(v.Domain)
	default:
		return nil, errors.New("unknown EC parameters variant")
	}
}

func parseECParameters(raw asn1.RawValue) (ECParameters, error) {
	switch {
	case raw.Class == asn1.ClassUniversal && raw.Tag == asn1.TagOID:
		var oid asn1.ObjectIdentifier
		if _, err := asn1.Unmarshal(raw.FullBytes, &oid); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal named curve OID")
		}
		return ECNamedCurve{OID: oid}, nil
	case raw.Class == asn1.ClassUniversal && raw.Tag == asn1.TagNull:
		return ECImplicitCurve{}, nil
	case raw.Class == asn1.ClassUniversal && raw.Tag == asn1.TagSequence && raw.IsCompound:
		domain, err := unmarshalECSpecifiedDomain(raw.FullBytes)
		if err != nil {
			return nil, err
		}
		return ECSpecifiedCurve{Domain: domain}, nil
	default:
		return nil, errors.New("unsupported EC parameters encoding")
	}
}

// UnmarshalECParameters parses a standalone ECParameters CHOICE.
func UnmarshalECParameters(der []byte) (ECParameters, error) {
	var raw asn1.RawValue
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal EC parameters")
	}
	if len(rest) != 0 {
		return nil, errors.New("EC: parameters with non empty leftover")
	}

	return parseECParameters(raw)
}

func (k ECPublicKey) Validate() error {
	return validation.Errors{
		"point": validation.Validate(k.Point, validation.Required),
	}.Filter()
}

// Marshal DER-encodes the point as a bare OCTET STRING.
func (k ECPublicKey) Marshal() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid EC public key")
	}

	return asn1.Marshal(k.Point)
}

// UnmarshalECPublicKey parses a bare OCTET STRING point.
func UnmarshalECPublicKey(der []byte) (ECPublicKey, error) {
	var point []byte
	rest, err := asn1.Unmarshal(der, &point)
	if err != nil {
		return ECPublicKey{}, errors.Wrap(err, "failed to unmarshal EC public key")
	}
	if len(rest) != 0 {
		return ECPublicKey{}, errors.New("EC: public key with non empty leftover")
	}

	return ECPublicKey{Point: point}, nil
}

func (k ECPrivateKey) Validate() error {
	return validation.Errors{
		"k": validation.Validate(k.K, validation.Required),
	}.Filter()
}

// Marshal DER-encodes the key as a SEC1 ECPrivateKey SEQUENCE.
func (k ECPrivateKey) Marshal() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid EC private key")
	}

	raw := ecPrivateKey{Version: ecVersion, PrivateKey: k.K}
	if k.Params != nil {
		params, err := MarshalECParameters(k.Params)
		if err != nil {
			return nil, err
		}
		raw.Params = asn1.RawValue{
			Class:      asn1.ClassContextSpecific,
			Tag:        0,
			IsCompound: true,
			Bytes:      params,
		}
	}
	if k.PublicKey != nil {
		raw.PublicKey = asn1.BitString{Bytes: k.PublicKey, BitLength: len(k.PublicKey) * 8}
	}

	return asn1.Marshal(raw)
}

// UnmarshalECPrivateKey parses a SEC1 ECPrivateKey.
func UnmarshalECPrivateKey(der []byte) (ECPrivateKey, error) {
	var raw ecPrivateKey
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return ECPrivateKey{}, errors.Wrap(err, "failed to unmarshal EC private key")
	}
	if len(rest) != 0 {
		return ECPrivateKey{}, errors.New("EC: private key with non empty leftover")
	}
	if raw.Version != ecVersion {
		return ECPrivateKey{}, errors.New(fmt.Sprintf("EC: private key version %d not supported", raw.Version))
	}

	key := ECPrivateKey{K: raw.PrivateKey}
	if len(raw.Params.FullBytes) != 0 {
		var inner asn1.RawValue
		if _, err := asn1.Unmarshal(raw.Params.Bytes, &inner); err != nil {
			return ECPrivateKey{}, errors.Wrap(err, "failed to unmarshal EC private key parameters")
		}
		params, err := parseECParameters(inner)
		if err != nil {
			return ECPrivateKey{}, err
		}
		key.Params = params
	}
	if raw.PublicKey.Bytes != nil {
		key.PublicKey = raw.PublicKey.Bytes
	}

	return key, nil
}
