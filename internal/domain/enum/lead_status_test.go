package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadStatusIsConvertible(t *testing.T) {
	tests := []struct {
		status      LeadStatus
		convertible bool
	}{
		{LeadStatusNew, true},
		{LeadStatusContacted, true},
		{LeadStatusNurturing, true},
		{LeadStatusUnqualified, true},
		{LeadStatusQualified, false},
		{LeadStatusConverted, false},
		{LeadStatus("Custom Stage"), true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.convertible, tt.status.IsConvertible())
		})
	}
}

func TestTerminalLeadStatuses(t *testing.T) {
	terminal := TerminalLeadStatuses()
	assert.Contains(t, terminal, LeadStatusConverted)
	assert.Contains(t, terminal, LeadStatusQualified)
	assert.Len(t, terminal, 2)
}

func TestLeadStatusJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(LeadStatusNurturing)
	require.NoError(t, err)
	assert.Equal(t, `"Nurturing"`, string(data))

	var s LeadStatus
	require.NoError(t, json.Unmarshal([]byte(`"Converted"`), &s))
	assert.Equal(t, LeadStatusConverted, s)
}
