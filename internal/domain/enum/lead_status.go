package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// LeadStatus represents the pipeline stage of a lead. Conversion accepts an
// arbitrary caller-supplied target status, so the column stays string-backed
// and these constants cover the stock values.
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusNurturing   LeadStatus = "Nurturing"
	LeadStatusQualified   LeadStatus = "Qualified"
	LeadStatusUnqualified LeadStatus = "Unqualified"
	LeadStatusConverted   LeadStatus = "Converted"
)

// TerminalLeadStatuses are the statuses past which a lead may not be
// converted again.
func TerminalLeadStatuses() []LeadStatus {
	return []LeadStatus{LeadStatusConverted, LeadStatusQualified}
}

// IsConvertible reports whether a lead in this status may still be converted.
func (s LeadStatus) IsConvertible() bool {
	for _, t := range TerminalLeadStatuses() {
		if s == t {
			return false
		}
	}
	return true
}

func (s LeadStatus) String() string {
	return string(s)
}

func (s LeadStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *LeadStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = LeadStatus(str)
	return nil
}

func (s LeadStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *LeadStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LeadStatusNew
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = LeadStatus(v)
	case []byte:
		*s = LeadStatus(string(v))
	}
	return nil
}
