package resources

import (
	"github.com/rarimo/keycodec/keys"
)

// RSAPublicKey is the JSON form of a bare RSA public key.
type RSAPublicKey struct {
	// The modulus, decimal string
	N string `json:"n"`
	// The public exponent, decimal string
	E string `json:"e"`
}

// RSAPrivateKey is the JSON form of a bare RSA private key.
type RSAPrivateKey struct {
	N    string `json:"n"`
	E    string `json:"e"`
	D    string `json:"d"`
	P    string `json:"p"`
	Q    string `json:"q"`
	Dp   string `json:"dp"`
	Dq   string `json:"dq"`
	Qinv string `json:"qinv"`
	// CRT data of the third and subsequent primes, multi-prime keys only
	OtherPrimes []RSAOtherPrime `json:"other_primes,omitempty"`
}

// RSAOtherPrime is one OtherPrimeInfo entry.
type RSAOtherPrime struct {
	R string `json:"r"`
	D string `json:"d"`
	T string `json:"t"`
}

func NewRSAPublicKey(key keys.RSAPublicKey) RSAPublicKey {
	return RSAPublicKey{
		N: bigIntString(key.N),
		E: bigIntString(key.E),
	}
}

func NewRSAPrivateKey(key keys.RSAPrivateKey) RSAPrivateKey {
	model := RSAPrivateKey{
		N:    bigIntString(key.N),
		E:    bigIntString(key.E),
		D:    bigIntString(key.D),
		P:    bigIntString(key.P),
		Q:    bigIntString(key.Q),
		Dp:   bigIntString(key.Dp),
		Dq:   bigIntString(key.Dq),
		Qinv: bigIntString(key.Qinv),
	}
	for _, p := range key.OtherPrimes {
		model.OtherPrimes = append(model.OtherPrimes, RSAOtherPrime{
			R: bigIntString(p.R),
			D: bigIntString(p.D),
			T: bigIntString(p.T),
		})
	}

	return model
}
