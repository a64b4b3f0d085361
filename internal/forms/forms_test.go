package forms_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/riskready/internal/forms"
	"github.com/ajitpratap0/riskready/internal/models"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{" 7 ", 7},
		{"12 cans", 12},
		{"2.9", 2},
		{"-3", -3},
		{"abc", 0},
		{"", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, forms.ParseCount(tc.in))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25.99", 25.99},
		{".5", 0.5},
		{"3.5 USD", 3.5},
		{"1e2", 100},
		{"NaN", 0},
		{"free", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.InDelta(t, tc.want, forms.ParseAmount(tc.in), 1e-9)
		})
	}
}

func TestDecodeInventoryCoercesNumbers(t *testing.T) {
	var f forms.InventoryItem
	err := forms.Decode([]byte(`{"name":"Water","quantity":"lots","unitCost":"2.50","minimumStock":10}`), &f)
	require.NoError(t, err)

	item := f.Model("x")
	assert.Equal(t, 0.0, item.Quantity)
	assert.Equal(t, 2.5, item.UnitCost)
	assert.Equal(t, 10.0, item.MinimumStock)
	assert.Nil(t, item.ExpirationDate)
}

func TestDecodeInventoryRejectsNegative(t *testing.T) {
	var f forms.InventoryItem
	err := forms.Decode([]byte(`{"name":"Water","quantity":-4}`), &f)

	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "gte", verr.Fields["quantity"])
}

func TestDecodeScenario(t *testing.T) {
	var f forms.Scenario
	err := forms.Decode([]byte(`{
		"name": "Wildfire",
		"severity": "high",
		"probability": "medium",
		"velocity": "fast",
		"detectability": "moderate",
		"seasonalRisk": ["summer", "fall"],
		"categories": ["cat1", ""]
	}`), &f)
	require.NoError(t, err)

	sc := f.Model("s1")
	assert.Equal(t, "s1", sc.ID)
	assert.Equal(t, []string{"cat1"}, sc.Categories)
	assert.True(t, sc.HasSeason(models.SeasonFall))
}

func TestDecodeScenarioReportsEveryBadField(t *testing.T) {
	var f forms.Scenario
	err := forms.Decode([]byte(`{"severity":"extreme","probability":"low","velocity":"slow","detectability":"easy","seasonalRisk":["monsoon"]}`), &f)

	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "required", verr.Fields["name"])
	assert.Equal(t, "known", verr.Fields["severity"])
	assert.Equal(t, "known", verr.Fields["seasonalRisk[0]"])
	assert.Contains(t, verr.Error(), "severity (known)")
}

func TestDecodeMalformedJSON(t *testing.T) {
	var f forms.Category
	err := forms.Decode([]byte(`{"name":`), &f)
	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, verr.Fields)
}

func TestRemediationDefaults(t *testing.T) {
	var f forms.Remediation
	require.NoError(t, forms.Decode([]byte(`{"name":"Buy radio","dueDate":""}`), &f))
	r := f.Model("r1")
	assert.Empty(t, r.Status, "left for the state to fill in")
	assert.Nil(t, r.DueDate)

	require.NoError(t, forms.Decode([]byte(`{"name":"Buy radio","dueDate":"2025-06-01"}`), &f))
	r = f.Model("r1")
	require.NotNil(t, r.DueDate)
	assert.Equal(t, "2025-06-01", r.DueDate.String())
}

func TestContact(t *testing.T) {
	var f forms.Contact
	err := forms.Decode([]byte(`{"name":"Dr. Lee","category":"medical","priority":"primary","phonePrimary":"555","email":"not-an-email"}`), &f)
	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Fields["email"])

	f = forms.Contact{}
	require.NoError(t, forms.Decode([]byte(`{"name":"Dr. Lee","category":"medical","priority":"primary","phonePrimary":"555"}`), &f))
	assert.True(t, f.Model("c1").IsActive)
}

func TestStatusAndMove(t *testing.T) {
	var s forms.StatusChange
	assert.NoError(t, forms.Decode([]byte(`{"status":"completed"}`), &s))
	assert.Error(t, forms.Decode([]byte(`{"status":"done"}`), &s))

	var m forms.Move
	assert.NoError(t, forms.Decode([]byte(`{"direction":"up"}`), &m))
	assert.Error(t, forms.Decode([]byte(`{"direction":"left"}`), &m))
}

func TestStepOrder(t *testing.T) {
	var f forms.Step
	require.NoError(t, forms.Decode([]byte(`{"name":"Fill bathtub","order":"4"}`), &f))
	st := f.Model("s1")
	assert.Equal(t, 4, st.Order)
	assert.Empty(t, st.Status)

	f = forms.Step{}
	require.NoError(t, forms.Decode([]byte(`{"name":"Fill bathtub"}`), &f))
	assert.Zero(t, f.Model("s1").Order)

	f = forms.Step{}
	err := forms.Decode([]byte(`{"name":"Fill bathtub","order":-2}`), &f)
	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "gte", verr.Fields["order"])
}

func TestKnownRuleRegistered(t *testing.T) {
	var f forms.StatusChange
	err := forms.Decode([]byte(`{"status":"done"}`), &f)
	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "known", verr.Fields["status"])
}

func TestCategoryColor(t *testing.T) {
	var f forms.Category
	assert.NoError(t, forms.Decode([]byte(`{"name":"Travel","color":"#3b82f6"}`), &f))
	assert.Error(t, forms.Decode([]byte(`{"name":"Travel","color":"blue"}`), &f))
}
