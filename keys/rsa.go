package keys

import (
	"math/big"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rarimo/certificate-transparency-go/asn1"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// RSAPublicKey is a bare PKCS#1 RSA public key.
type RSAPublicKey struct {
	N *big.Int // modulus
	E *big.Int // public exponent
}

// RSAPrivateKey is a bare PKCS#1 RSA private key. OtherPrimes is empty
// for two-prime keys and carries the CRT data of the third and
// subsequent primes for multi-prime keys.
type RSAPrivateKey struct {
	N    *big.Int
	E    *big.Int
	D    *big.Int
	P    *big.Int
	Q    *big.Int
	Dp   *big.Int
	Dq   *big.Int
	Qinv *big.Int

	OtherPrimes []RSAOtherPrime
}

// RSAOtherPrime is one OtherPrimeInfo entry of a multi-prime key.
type RSAOtherPrime struct {
	R *big.Int // prime factor
	D *big.Int // exponent d mod (r-1)
	T *big.Int // CRT coefficient
}

type rsaPublicKey struct {
	N *big.Int
	E *big.Int
}

type rsaPrivateKey struct {
	Version     int
	N           *big.Int
	E           *big.Int
	D           *big.Int
	P           *big.Int
	Q           *big.Int
	Dp          *big.Int
	Dq          *big.Int
	Qinv        *big.Int
	OtherPrimes []rsaOtherPrime `asn1:"optional,omitempty"`
}

type rsaOtherPrime struct {
	R *big.Int
	D *big.Int
	T *big.Int
}

func (k RSAPublicKey) Validate() error {
	return validation.Errors{
		"n": validation.Validate(k.N, validation.Required),
		"e": validation.Validate(k.E, validation.Required),
	}.Filter()
}

// Marshal DER-encodes the key as an RSAPublicKey SEQUENCE.
func (k RSAPublicKey) Marshal() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid RSA public key")
	}

	return asn1.Marshal(rsaPublicKey{N: k.N, E: k.E})
}

// UnmarshalRSAPublicKey parses a bare RSA public key.
func UnmarshalRSAPublicKey(der []byte) (RSAPublicKey, error) {
	var raw rsaPublicKey
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return RSAPublicKey{}, errors.Wrap(err, "failed to unmarshal RSA public key")
	}
	if len(rest) != 0 {
		return RSAPublicKey{}, errors.New("RSA: public key with non empty leftover")
	}

	return RSAPublicKey{N: raw.N, E: raw.E}, nil
}

func (k RSAPrivateKey) Validate() error {
	return validation.Errors{
		"n":    validation.Validate(k.N, validation.Required),
		"e":    validation.Validate(k.E, validation.Required),
		"d":    validation.Validate(k.D, validation.Required),
		"p":    validation.Validate(k.P, validation.Required),
		"q":    validation.Validate(k.Q, validation.Required),
		"dp":   validation.Validate(k.Dp, validation.Required),
		"dq":   validation.Validate(k.Dq, validation.Required),
		"qinv": validation.Validate(k.Qinv, validation.Required),
	}.Filter()
}

// Marshal DER-encodes the key as an RSAPrivateKey SEQUENCE. The wire
// version is 0 for two-prime keys and 1 when OtherPrimes is non-empty,
// so multi-prime key data always survives a round trip.
func (k RSAPrivateKey) Marshal() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid RSA private key")
	}

	raw := rsaPrivateKey{
		N:    k.N,
		E:    k.E,
		D:    k.D,
		P:    k.P,
		Q:    k.Q,
		Dp:   k.Dp,
		Dq:   k.Dq,
		Qinv: k.Qinv,
	}
	for _, p := range k.OtherPrimes {
		raw.OtherPrimes = append(raw.OtherPrimes, rsaOtherPrime(p))
	}
	if len(raw.OtherPrimes) > 0 {
		raw.Version = 1
	}

	return asn1.Marshal(raw)
}

// UnmarshalRSAPrivateKey parses a bare RSA private key. The wire
// version must agree with the presence of OtherPrimeInfos: 0 without,
// 1 with.
func UnmarshalRSAPrivateKey(der []byte) (RSAPrivateKey, error) {
	var raw rsaPrivateKey
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return RSAPrivateKey{}, errors.Wrap(err, "failed to unmarshal RSA private key")
	}
	if len(rest) != 0 {
		return RSAPrivateKey{}, errors.New("RSA: private key with non empty leftover")
	}

	wantVersion := 0
	if len(raw.OtherPrimes) > 0 {
		wantVersion = 1
	}
	if raw.Version != wantVersion {
		return RSAPrivateKey{}, errors.New("RSA private key version inconsistent with key data")
	}

	key := RSAPrivateKey{
		N:    raw.N,
		E:    raw.E,
		D:    raw.D,
		P:    raw.P,
		Q:    raw.Q,
		Dp:   raw.Dp,
		Dq:   raw.Dq,
		Qinv: raw.Qinv,
	}
	for _, p := range raw.OtherPrimes {
		key.OtherPrimes = append(key.OtherPrimes, RSAOtherPrime(p))
	}

	return key, nil
}
