package generator

import "tomato-monitor/internal/modules/sensors/types"

const (
	temperatureDanger  = 35.0
	temperatureWarning = 15.0
	humidityHigh       = 90.0
	humidityLow        = 30.0
	soilMoistureLow    = 20.0
)

// Assess flags values outside the comfortable growing range. Limits are
// exclusive, so a reading sitting exactly on a range edge raises nothing.
func Assess(r types.Reading) []types.Alert {
	alerts := make([]types.Alert, 0)

	switch {
	case r.Temperature > temperatureDanger:
		alerts = append(alerts, types.Alert{Field: "temperature", Level: types.AlertDanger, Message: "temperature too high", Value: r.Temperature})
	case r.Temperature < temperatureWarning:
		alerts = append(alerts, types.Alert{Field: "temperature", Level: types.AlertWarning, Message: "temperature too low", Value: r.Temperature})
	}

	switch {
	case r.Humidity > humidityHigh:
		alerts = append(alerts, types.Alert{Field: "humidity", Level: types.AlertWarning, Message: "humidity too high", Value: r.Humidity})
	case r.Humidity < humidityLow:
		alerts = append(alerts, types.Alert{Field: "humidity", Level: types.AlertWarning, Message: "humidity too low", Value: r.Humidity})
	}

	if r.SoilMoisture < soilMoistureLow {
		alerts = append(alerts, types.Alert{Field: "soil_moisture", Level: types.AlertWarning, Message: "soil moisture too low, irrigation needed", Value: r.SoilMoisture})
	}

	return alerts
}
