package models

// Requests and responses for the orchestration HTTP endpoints.

type QuotesRequest struct {
	Symbols []string `query:"symbols" json:"symbols" validate:"omitempty,max=25,dive,min=1,max=12"`
}

type SentimentRequest struct {
	Symbols []string `query:"symbols" json:"symbols" validate:"omitempty,max=25,dive,min=1,max=12"`
}

type QuotesResponse struct {
	Quotes []Quote          `json:"quotes"`
	Health DataHealthStatus `json:"health"`
}

// DegradedResponse is returned on total subsystem failure: the error plus a
// RED/FALLBACK health stub so consumers still have something to render.
type DegradedResponse struct {
	Error  string           `json:"error"`
	Health DataHealthStatus `json:"health"`
}

type SentimentResponse struct {
	Results  []WeightedSentimentResult `json:"results"`
	Articles []NewsArticle             `json:"articles"`
	Metadata SentimentMetadata         `json:"metadata"`
}

type AnomaliesResponse struct {
	Anomalies []DataAnomaly `json:"anomalies"`
	Total     int           `json:"total"`
}
