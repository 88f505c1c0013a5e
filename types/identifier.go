package types

import (
	"github.com/rarimo/certificate-transparency-go/asn1"
	"github.com/rarimo/keycodec/keys"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// AlgorithmIdentifier is the AlgorithmIdentifier SEQUENCE shared by
// the X.509 and PKCS#8 envelopes. Parameters keeps the raw encoding;
// the per-family accessors interpret it.
type AlgorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue `asn1:"optional"`
}

// Family maps the identifier's OID to its algorithm family.
func (ai AlgorithmIdentifier) Family() Algorithm {
	return AlgorithmFromOID(ai.Algorithm)
}

// NewRSAAlgorithmIdentifier builds the RSA identifier with NULL
// parameters.
func NewRSAAlgorithmIdentifier() AlgorithmIdentifier {
	return AlgorithmIdentifier{
		Algorithm:  OidRSA,
		Parameters: asn1.NullRawValue,
	}
}

// NewDSAAlgorithmIdentifier builds the DSA identifier with the domain
// parameters in the parameters slot.
func NewDSAAlgorithmIdentifier(params keys.DSAParams) (AlgorithmIdentifier, error) {
	der, err := params.Marshal()
	if err != nil {
		return AlgorithmIdentifier{}, err
	}

	return AlgorithmIdentifier{
		Algorithm:  OidDSA,
		Parameters: asn1.RawValue{FullBytes: der},
	}, nil
}

// NewECAlgorithmIdentifier builds the EC identifier with the
// ECParameters CHOICE in the parameters slot.
func NewECAlgorithmIdentifier(params keys.ECParameters) (AlgorithmIdentifier, error) {
	der, err := keys.MarshalECParameters(params)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}

	return AlgorithmIdentifier{
		Algorithm:  OidEC,
		Parameters: asn1.RawValue{FullBytes: der},
	}, nil
}

// RSAParameters verifies the identifier is the RSA one with NULL
// parameters.
func (ai AlgorithmIdentifier) RSAParameters() error {
	if ai.Family() != RSA {
		return errors.New("Algorithm OID and parameters doesn't match")
	}
	if ai.Parameters.Class != asn1.ClassUniversal || ai.Parameters.Tag != asn1.TagNull || len(ai.Parameters.Bytes) != 0 {
		return errors.New("Algorithm OID and parameters doesn't match")
	}

	return nil
}

// DSAParameters verifies the identifier is the DSA one and parses the
// domain parameters.
func (ai AlgorithmIdentifier) DSAParameters() (keys.DSAParams, error) {
	if ai.Family() != DSA {
		return keys.DSAParams{}, errors.New("Algorithm OID and parameters doesn't match")
	}
	if ai.Parameters.Class != asn1.ClassUniversal || ai.Parameters.Tag != asn1.TagSequence || !ai.Parameters.IsCompound {
		return keys.DSAParams{}, errors.New("Algorithm OID and parameters doesn't match")
	}

	params, err := keys.UnmarshalDSAParams(ai.Parameters.FullBytes)
	if err != nil {
		return keys.DSAParams{}, errors.Wrap(err, "failed to parse DSA algorithm parameters")
	}

	return params, nil
}

// ECParameters verifies the identifier is the EC one and parses the
// ECParameters CHOICE.
func (ai AlgorithmIdentifier) ECParameters() (keys.ECParameters, error) {
	if ai.Family() != EC {
		return nil, errors.New("Algorithm OID and parameters doesn't match")
	}
	if len(ai.Parameters.FullBytes) == 0 {
		return nil, errors.New("Algorithm OID and parameters doesn't match")
	}

	params, err := keys.UnmarshalECParameters(ai.Parameters.FullBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse EC algorithm parameters")
	}

	return params, nil
}
