package models

import "encoding/json"

// ClassificationResponse is the success payload for /classify. The key names
// and the 4-decimal probability match the original wire contract; the label
// is run through a real JSON encoder so quotes in label text stay valid.
type ClassificationResponse struct {
	PredictedLabel string      `json:"Predicted label"`
	Probability    json.Number `json:"Probability"`
}

// HealthResponse is the payload for /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
}
