package homeautomation

import "errors"

const (
	minBrightnessPercent = 0
	maxBrightnessPercent = 100
	minTargetCelsius     = 5.0
	maxTargetCelsius     = 30.0
)

var ErrBrightnessOutOfRange = errors.New("brightness must be between 0 and 100 percent")
var ErrTemperatureOutOfRange = errors.New("target temperature must be between 5 and 30 degrees celsius")

// Light is a dimmable light, one of the receivers the remote's commands operate on.
type Light struct {
	name       string
	on         bool
	brightness int
}

// NewLight creates a switched-off Light at full brightness.
func NewLight(name string) *Light {
	return &Light{name: name, brightness: maxBrightnessPercent}
}

// TurnOn switches the light on.
func (l *Light) TurnOn() {
	l.on = true
}

// TurnOff switches the light off.
func (l *Light) TurnOff() {
	l.on = false
}

// SetBrightness sets the brightness percentage.
// Returns ErrBrightnessOutOfRange outside 0-100.
func (l *Light) SetBrightness(percent int) error {
	if percent < minBrightnessPercent || percent > maxBrightnessPercent {
		return ErrBrightnessOutOfRange
	}

	l.brightness = percent

	return nil
}

// IsOn reports whether the light is switched on.
func (l *Light) IsOn() bool {
	return l.on
}

// Brightness returns the current brightness percentage.
func (l *Light) Brightness() int {
	return l.brightness
}

// Thermostat is a heating thermostat, the second receiver in this example.
type Thermostat struct {
	name          string
	targetCelsius float64
}

// NewThermostat creates a Thermostat with the given initial target temperature.
func NewThermostat(name string, targetCelsius float64) *Thermostat {
	return &Thermostat{name: name, targetCelsius: targetCelsius}
}

// SetTarget sets the target temperature.
// Returns ErrTemperatureOutOfRange outside the supported 5-30 degree range.
func (t *Thermostat) SetTarget(celsius float64) error {
	if celsius < minTargetCelsius || celsius > maxTargetCelsius {
		return ErrTemperatureOutOfRange
	}

	t.targetCelsius = celsius

	return nil
}

// Target returns the current target temperature in degrees celsius.
func (t *Thermostat) Target() float64 {
	return t.targetCelsius
}
