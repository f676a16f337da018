package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OpportunityStage represents the sales stage of an opportunity
type OpportunityStage string

const (
	OpportunityStageQualification OpportunityStage = "Qualification"
	OpportunityStageNeedsAnalysis OpportunityStage = "Needs Analysis"
	OpportunityStageProposal      OpportunityStage = "Proposal"
	OpportunityStageNegotiation   OpportunityStage = "Negotiation"
	OpportunityStageClosedWon     OpportunityStage = "Closed Won"
	OpportunityStageClosedLost    OpportunityStage = "Closed Lost"
)

func (s OpportunityStage) String() string {
	return string(s)
}

func (s OpportunityStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *OpportunityStage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = OpportunityStage(str)
	return nil
}

func (s OpportunityStage) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *OpportunityStage) Scan(value interface{}) error {
	if value == nil {
		*s = OpportunityStageQualification
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = OpportunityStage(v)
	case []byte:
		*s = OpportunityStage(string(v))
	}
	return nil
}

// ForecastCategory represents the forecast bucket of an opportunity
type ForecastCategory string

const (
	ForecastCategoryPipeline ForecastCategory = "Pipeline"
	ForecastCategoryBestCase ForecastCategory = "Best Case"
	ForecastCategoryCommit   ForecastCategory = "Commit"
	ForecastCategoryOmitted  ForecastCategory = "Omitted"
	ForecastCategoryClosed   ForecastCategory = "Closed"
)

func (f ForecastCategory) String() string {
	return string(f)
}

func (f ForecastCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f *ForecastCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*f = ForecastCategory(str)
	return nil
}

func (f ForecastCategory) Value() (driver.Value, error) {
	return string(f), nil
}

func (f *ForecastCategory) Scan(value interface{}) error {
	if value == nil {
		*f = ForecastCategoryPipeline
		return nil
	}
	switch v := value.(type) {
	case string:
		*f = ForecastCategory(v)
	case []byte:
		*f = ForecastCategory(string(v))
	}
	return nil
}
