package types

import (
	"encoding/json"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-inspector/hydration"
)

func TestElementRefEncoding(t *testing.T) {
	data, err := json.Marshal(ElementRef{ID: 7, RendererID: 2})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":7,"rendererID":2}`, string(data))
}

func TestInspectedElementNullable(t *testing.T) {
	var e InspectedElement
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"source":null,"owners":null,"props":null}`), &e))
	require.Equal(t, ElementID(4), e.ID)
	require.Nil(t, e.Source)
	require.Nil(t, e.Owners)
	require.Nil(t, e.Props)

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, e.MarshalLogObject(enc))
	require.Equal(t, uint64(4), enc.Fields["id"])
	require.Equal(t, false, enc.Fields["props"])
}

func TestElementIDString(t *testing.T) {
	require.Equal(t, "18446744073709551615", ElementID(^uint64(0)).String())
}

func TestValidateInspectedElement(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		payload string
		valid   bool
	}{
		{"null", `null`, true},
		{"minimal", `{"id":1}`, true},
		{"full", `{"id":1,"source":{"fileName":"a.js","lineNumber":2},"owners":[{"id":0,"displayName":"Root"}],` +
			`"props":{"data":{"a":[1]},"cleaned":[["a",0]]},"state":null}`, true},
		{"missing id", `{"props":null}`, false},
		{"negative id", `{"id":-1}`, false},
		{"string id", `{"id":"1"}`, false},
		{"bool in path", `{"id":1,"hooks":{"data":[],"cleaned":[[false]]}}`, false},
		{"path not a list", `{"id":1,"hooks":{"data":[],"cleaned":["a"]}}`, false},
		{"missing data", `{"id":1,"context":{"cleaned":[]}}`, false},
		{"not json", `{`, false},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			err := ValidateInspectedElement([]byte(tc.payload))
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func fuzzDehydrated(d *hydration.Dehydrated, c fuzz.Continue) {
	data := map[string]any{}
	for n := c.Intn(4); n > 0; n-- {
		key := c.RandString()
		data[key] = float64(c.Int31())
		if c.RandBool() {
			d.Cleaned = append(d.Cleaned, hydration.Path{key})
		}
	}
	d.Data = data
}

func TestWireRecordsRoundTrip(t *testing.T) {
	f := fuzz.NewWithSeed(1001).NilChance(0.2).Funcs(fuzzDehydrated)

	t.Run("element ref", func(t *testing.T) {
		for range 100 {
			var ref ElementRef
			f.Fuzz(&ref)
			data, err := json.Marshal(ref)
			require.NoError(t, err)
			var decoded ElementRef
			require.NoError(t, json.Unmarshal(data, &decoded))
			require.Equal(t, ref, decoded)
		}
	})
	t.Run("inspected element", func(t *testing.T) {
		for range 100 {
			var element InspectedElement
			f.Fuzz(&element)
			data, err := json.Marshal(&element)
			require.NoError(t, err)
			require.NoError(t, ValidateInspectedElement(data))
			var decoded InspectedElement
			require.NoError(t, json.Unmarshal(data, &decoded))
			require.Equal(t, element, decoded)
		}
	})
}
