package keys

import (
	"math/big"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rarimo/certificate-transparency-go/asn1"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// DSAParams are the domain parameters shared by a DSA key pair.
type DSAParams struct {
	P *big.Int
	Q *big.Int
	G *big.Int
}

// DSAPublicKey wraps the public value y = g^x mod p.
type DSAPublicKey struct {
	Y *big.Int
}

// DSAPrivateKey wraps the private value x.
type DSAPrivateKey struct {
	X *big.Int
}

type dsaParams struct {
	P *big.Int
	Q *big.Int
	G *big.Int
}

func (p DSAParams) Validate() error {
	return validation.Errors{
		"p": validation.Validate(p.P, validation.Required),
		"q": validation.Validate(p.Q, validation.Required),
		"g": validation.Validate(p.G, validation.Required),
	}.Filter()
}

// Marshal DER-encodes the parameters as a SEQUENCE of three INTEGERs.
func (p DSAParams) Marshal() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid DSA parameters")
	}

	return asn1.Marshal(dsaParams{P: p.P, Q: p.Q, G: p.G})
}

// UnmarshalDSAParams parses bare DSA domain parameters.
func UnmarshalDSAParams(der []byte) (DSAParams, error) {
	var raw dsaParams
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return DSAParams{}, errors.Wrap(err, "failed to unmarshal DSA parameters")
	}
	if len(rest) != 0 {
		return DSAParams{}, errors.New("DSA: parameters with non empty leftover")
	}

	return DSAParams{P: raw.P, Q: raw.Q, G: raw.G}, nil
}

func (k DSAPublicKey) Validate() error {
	return validation.Errors{
		"y": validation.Validate(k.Y, validation.Required),
	}.Filter()
}

// Marshal DER-encodes the public value as a bare INTEGER.
func (k DSAPublicKey) Marshal() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid DSA public key")
	}

	return asn1.Marshal(k.Y)
}

// UnmarshalDSAPublicKey parses a bare INTEGER public value.
func UnmarshalDSAPublicKey(der []byte) (DSAPublicKey, error) {
	var y *big.Int
	rest, err := asn1.Unmarshal(der, &y)
	if err != nil {
		return DSAPublicKey{}, errors.Wrap(err, "failed to unmarshal DSA public key")
	}
	if len(rest) != 0 {
		return DSAPublicKey{}, errors.New("DSA: public key with non empty leftover")
	}

	return DSAPublicKey{Y: y}, nil
}

func (k DSAPrivateKey) Validate() error {
	return validation.Errors{
		"x": validation.Validate(k.X, validation.Required),
	}.Filter()
}

// Marshal DER-encodes the private value as a bare INTEGER.
func (k DSAPrivateKey) Marshal() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid DSA private key")
	}

	return asn1.Marshal(k.X)
}

// UnmarshalDSAPrivateKey parses a bare INTEGER private value.
func UnmarshalDSAPrivateKey(der []byte) (DSAPrivateKey, error) {
	var x *big.Int
	rest, err := asn1.Unmarshal(der, &x)
	if err != nil {
		return DSAPrivateKey{}, errors.Wrap(err, "failed to unmarshal DSA private key")
	}
	if len(rest) != 0 {
		return DSAPrivateKey{}, errors.New("DSA: private key with non empty leftover")
	}

	return DSAPrivateKey{X: x}, nil
}
