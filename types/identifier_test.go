package types

import (
	"math/big"
	"testing"

	"github.com/rarimo/certificate-transparency-go/asn1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rarimo/keycodec/keys"
)

func TestAlgorithmFromOID(t *testing.T) {
	cases := []struct {
		oid      asn1.ObjectIdentifier
		expected Algorithm
	}{
		{OidRSA, RSA},
		{OidDSA, DSA},
		{OidEC, EC},
		{asn1.ObjectIdentifier{1, 3, 101, 112}, Unknown}, // Ed25519
	}

	for _, tc := range cases {
		t.Run(tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, AlgorithmFromOID(tc.oid))
		})
	}
}

func TestAlgorithmOID(t *testing.T) {
	assert.True(t, RSA.OID().Equal(OidRSA))
	assert.True(t, DSA.OID().Equal(OidDSA))
	assert.True(t, EC.OID().Equal(OidEC))
	assert.Nil(t, Unknown.OID())
}

func TestRSAAlgorithmIdentifier(t *testing.T) {
	ai := NewRSAAlgorithmIdentifier()

	der, err := asn1.Marshal(ai)
	require.NoError(t, err)

	var decoded AlgorithmIdentifier
	_, err = asn1.Unmarshal(der, &decoded)
	require.NoError(t, err)

	assert.Equal(t, RSA, decoded.Family())
	assert.NoError(t, decoded.RSAParameters())

	// RSA identifier rejected by the other families
	_, err = decoded.DSAParameters()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Algorithm OID and parameters doesn't match")

	_, err = decoded.ECParameters()
	assert.Error(t, err)
}

func TestRSAAlgorithmIdentifierNonNullParams(t *testing.T) {
	params, err := asn1.Marshal(big.NewInt(1))
	require.NoError(t, err)

	der, err := asn1.Marshal(AlgorithmIdentifier{
		Algorithm:  OidRSA,
		Parameters: asn1.RawValue{FullBytes: params},
	})
	require.NoError(t, err)

	var decoded AlgorithmIdentifier
	_, err = asn1.Unmarshal(der, &decoded)
	require.NoError(t, err)

	err = decoded.RSAParameters()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Algorithm OID and parameters doesn't match")
}

func TestDSAAlgorithmIdentifier(t *testing.T) {
	params := keys.DSAParams{P: big.NewInt(7879), Q: big.NewInt(101), G: big.NewInt(170)}

	ai, err := NewDSAAlgorithmIdentifier(params)
	require.NoError(t, err)

	der, err := asn1.Marshal(ai)
	require.NoError(t, err)

	var decoded AlgorithmIdentifier
	_, err = asn1.Unmarshal(der, &decoded)
	require.NoError(t, err)

	got, err := decoded.DSAParameters()
	require.NoError(t, err)
	assert.Equal(t, params, got)

	// DSA identifier in an RSA slot
	err = decoded.RSAParameters()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Algorithm OID and parameters doesn't match")
}

func TestECAlgorithmIdentifier(t *testing.T) {
	params := keys.ECNamedCurve{OID: OidCurveSecp256r1}

	ai, err := NewECAlgorithmIdentifier(params)
	require.NoError(t, err)

	der, err := asn1.Marshal(ai)
	require.NoError(t, err)

	var decoded AlgorithmIdentifier
	_, err = asn1.Unmarshal(der, &decoded)
	require.NoError(t, err)

	got, err := decoded.ECParameters()
	require.NoError(t, err)
	assert.Equal(t, keys.ECParameters(params), got)
}

func TestNamedCurveName(t *testing.T) {
	name, ok := NamedCurveName(OidCurveSecp256r1)
	require.True(t, ok)
	assert.Equal(t, "secp256r1", name)

	_, ok = NamedCurveName(asn1.ObjectIdentifier{1, 2, 3})
	assert.False(t, ok)
}
