package types

import "time"

// Reading is one synthetic greenhouse sample.
type Reading struct {
	Timestamp    time.Time `json:"timestamp"`
	Temperature  float64   `json:"temperature"`
	Humidity     float64   `json:"humidity"`
	Light        int       `json:"light"`
	SoilMoisture float64   `json:"soil_moisture"`
	CO2          int       `json:"co2"`
}

type AlertLevel string

const (
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

type Alert struct {
	Field   string     `json:"field"`
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
	Value   float64    `json:"value"`
}

// Assessment pairs a reading with the alerts it raised.
type Assessment struct {
	Reading Reading `json:"reading"`
	Alerts  []Alert `json:"alerts"`
}
