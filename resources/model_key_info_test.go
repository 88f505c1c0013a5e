package resources

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rarimo/keycodec/keys"
	"github.com/rarimo/keycodec/spki"
	"github.com/rarimo/keycodec/types"
)

func TestNewPublicKeyInfoRSA(t *testing.T) {
	model := NewPublicKeyInfo(spki.RSA{
		Key: keys.RSAPublicKey{N: big.NewInt(3233), E: big.NewInt(17)},
	})

	data, err := json.Marshal(model)
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"RSA","rsa":{"n":"3233","e":"17"}}`, string(data))
}

func TestNewPublicKeyInfoEC(t *testing.T) {
	model := NewPublicKeyInfo(spki.EC{
		Params: keys.ECNamedCurve{OID: types.OidCurveSecp256r1},
		Point:  []byte{0x04, 0xAA, 0xBB},
	})

	data, err := json.Marshal(model)
	require.NoError(t, err)

	expected := `{
		"algorithm": "EC",
		"ec_params": {"kind": "named", "named_curve": "1.2.840.10045.3.1.7", "curve_name": "secp256r1"},
		"ec": {"point": "0x04aabb"}
	}`
	assert.JSONEq(t, expected, string(data))
}

func TestNewECParametersSpecified(t *testing.T) {
	params := keys.ECSpecifiedCurve{Domain: keys.ECSpecifiedDomain{
		Field: keys.ECCharTwoField{
			M:     big.NewInt(233),
			Basis: keys.ECTrinomialBasis{K: big.NewInt(74)},
		},
		Curve: keys.ECCurve{A: []byte{0x00}, B: []byte{0x01}, Seed: []byte{0xCA, 0xFE}},
		Base:  []byte{0x04, 0x01, 0x02},
		Order: big.NewInt(28),
	}}

	model := NewECParameters(params)
	require.Equal(t, "specified", model.Kind)
	require.NotNil(t, model.Specified)

	assert.Equal(t, "characteristic-two", model.Specified.Field.Kind)
	require.NotNil(t, model.Specified.Field.Basis)
	assert.Equal(t, "trinomial", model.Specified.Field.Basis.Kind)
	require.NotNil(t, model.Specified.Curve.Seed)
	assert.Equal(t, "0xcafe", *model.Specified.Curve.Seed)
	assert.Equal(t, "28", model.Specified.Order)
	assert.Nil(t, model.Specified.Cofactor)
}

func TestNewRSAPrivateKeyMultiPrime(t *testing.T) {
	model := NewRSAPrivateKey(keys.RSAPrivateKey{
		N:    big.NewInt(3233),
		E:    big.NewInt(17),
		D:    big.NewInt(413),
		P:    big.NewInt(61),
		Q:    big.NewInt(53),
		Dp:   big.NewInt(53),
		Dq:   big.NewInt(49),
		Qinv: big.NewInt(38),
		OtherPrimes: []keys.RSAOtherPrime{
			{R: big.NewInt(11), D: big.NewInt(7), T: big.NewInt(3)},
		},
	})

	require.Len(t, model.OtherPrimes, 1)
	assert.Equal(t, RSAOtherPrime{R: "11", D: "7", T: "3"}, model.OtherPrimes[0])
}
