package homeautomation

const (
	turnLightOnCommandName    = "TurnLightOn"
	turnLightOffCommandName   = "TurnLightOff"
	setBrightnessCommandName  = "SetLightBrightness"
	setTemperatureCommandName = "SetTargetTemperature"
)

// TurnLightOn represents the intent to switch a light on.
// The previous on/off state is captured during Execute so Undo can restore it.
type TurnLightOn struct {
	light    *Light
	wasOn    bool
	executed bool
}

// BuildTurnLightOn creates a new TurnLightOn command for the given light.
func BuildTurnLightOn(light *Light) *TurnLightOn {
	return &TurnLightOn{light: light}
}

// Name returns the type identifier for this command.
func (c *TurnLightOn) Name() string {
	return turnLightOnCommandName
}

// Execute switches the light on, capturing its previous state.
func (c *TurnLightOn) Execute() error {
	c.wasOn = c.light.IsOn()
	c.light.TurnOn()
	c.executed = true

	return nil
}

// Undo restores the light's previous on/off state.
// Without a prior successful Execute there is no captured state and Undo does nothing.
func (c *TurnLightOn) Undo() error {
	if !c.executed {
		return nil
	}

	if !c.wasOn {
		c.light.TurnOff()
	}

	return nil
}

// TurnLightOff represents the intent to switch a light off.
type TurnLightOff struct {
	light    *Light
	wasOn    bool
	executed bool
}

// BuildTurnLightOff creates a new TurnLightOff command for the given light.
func BuildTurnLightOff(light *Light) *TurnLightOff {
	return &TurnLightOff{light: light}
}

// Name returns the type identifier for this command.
func (c *TurnLightOff) Name() string {
	return turnLightOffCommandName
}

// Execute switches the light off, capturing its previous state.
func (c *TurnLightOff) Execute() error {
	c.wasOn = c.light.IsOn()
	c.light.TurnOff()
	c.executed = true

	return nil
}

// Undo restores the light's previous on/off state.
// Without a prior successful Execute there is no captured state and Undo does nothing.
func (c *TurnLightOff) Undo() error {
	if !c.executed {
		return nil
	}

	if c.wasOn {
		c.light.TurnOn()
	}

	return nil
}

// SetBrightness represents the intent to dim or brighten a light.
type SetBrightness struct {
	light              *Light
	percent            int
	previousBrightness int
	executed           bool
}

// BuildSetBrightness creates a new SetBrightness command for the given light.
func BuildSetBrightness(light *Light, percent int) *SetBrightness {
	return &SetBrightness{light: light, percent: percent}
}

// Name returns the type identifier for this command.
func (c *SetBrightness) Name() string {
	return setBrightnessCommandName
}

// Execute applies the new brightness, capturing the previous one.
func (c *SetBrightness) Execute() error {
	previous := c.light.Brightness()

	if err := c.light.SetBrightness(c.percent); err != nil {
		return err
	}

	c.previousBrightness = previous
	c.executed = true

	return nil
}

// Undo restores the previous brightness.
// Without a prior successful Execute there is no captured brightness and Undo does nothing.
func (c *SetBrightness) Undo() error {
	if !c.executed {
		return nil
	}

	return c.light.SetBrightness(c.previousBrightness)
}

// SetTemperature represents the intent to change a thermostat's target temperature.
type SetTemperature struct {
	thermostat     *Thermostat
	targetCelsius  float64
	previousTarget float64
	executed       bool
}

// BuildSetTemperature creates a new SetTemperature command for the given thermostat.
func BuildSetTemperature(thermostat *Thermostat, targetCelsius float64) *SetTemperature {
	return &SetTemperature{thermostat: thermostat, targetCelsius: targetCelsius}
}

// Name returns the type identifier for this command.
func (c *SetTemperature) Name() string {
	return setTemperatureCommandName
}

// Execute applies the new target temperature, capturing the previous one.
func (c *SetTemperature) Execute() error {
	previous := c.thermostat.Target()

	if err := c.thermostat.SetTarget(c.targetCelsius); err != nil {
		return err
	}

	c.previousTarget = previous
	c.executed = true

	return nil
}

// Undo restores the previous target temperature.
// Without a prior successful Execute there is no captured target and Undo does nothing.
func (c *SetTemperature) Undo() error {
	if !c.executed {
		return nil
	}

	return c.thermostat.SetTarget(c.previousTarget)
}
