package homeautomation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternworks/classic-patterns-go/example/homeautomation"
)

func Test_TurnLightOn_Undo_KeepsLightOn_WhenItAlreadyWasOn(t *testing.T) {
	// arrange
	light := homeautomation.NewLight("kitchen")
	light.TurnOn()

	cmd := homeautomation.BuildTurnLightOn(light)

	// act
	assert.NoError(t, cmd.Execute())
	assert.NoError(t, cmd.Undo())

	// assert - undo restores the captured state, it does not blindly toggle
	assert.True(t, light.IsOn())
}

func Test_SetBrightness_Undo_RestoresPreviousBrightness(t *testing.T) {
	// arrange
	light := homeautomation.NewLight("kitchen")
	assert.NoError(t, light.SetBrightness(80))

	cmd := homeautomation.BuildSetBrightness(light, 15)

	// act
	assert.NoError(t, cmd.Execute())
	assert.Equal(t, 15, light.Brightness())
	assert.NoError(t, cmd.Undo())

	// assert
	assert.Equal(t, 80, light.Brightness())
}

func Test_SetBrightness_Undo_WithoutExecute_DoesNothing(t *testing.T) {
	// arrange
	light := homeautomation.NewLight("kitchen")
	assert.NoError(t, light.SetBrightness(80))

	cmd := homeautomation.BuildSetBrightness(light, 15)

	// act - undo before the command ever ran
	err := cmd.Undo()

	// assert - no captured state, so nothing is applied
	assert.NoError(t, err)
	assert.Equal(t, 80, light.Brightness())
}

func Test_SetTemperature_Undo_AfterFailedExecute_DoesNothing(t *testing.T) {
	// arrange
	thermostat := homeautomation.NewThermostat("hallway", 20)

	cmd := homeautomation.BuildSetTemperature(thermostat, 99)

	// act
	assert.ErrorIs(t, cmd.Execute(), homeautomation.ErrTemperatureOutOfRange)
	undoErr := cmd.Undo()

	// assert - the failed execute captured nothing to restore
	assert.NoError(t, undoErr)
	assert.Equal(t, 20.0, thermostat.Target())
}

func Test_TurnLightOn_Undo_WithoutExecute_LeavesLightUntouched(t *testing.T) {
	// arrange
	light := homeautomation.NewLight("kitchen")
	light.TurnOn()

	cmd := homeautomation.BuildTurnLightOn(light)

	// act
	err := cmd.Undo()

	// assert
	assert.NoError(t, err)
	assert.True(t, light.IsOn())
}

func Test_SetBrightness_RejectsValuesOutsideRange(t *testing.T) {
	// arrange
	light := homeautomation.NewLight("kitchen")

	// act
	err := homeautomation.BuildSetBrightness(light, 101).Execute()

	// assert
	assert.ErrorIs(t, err, homeautomation.ErrBrightnessOutOfRange)
	assert.Equal(t, 100, light.Brightness())
}

func Test_SetTemperature_RejectsValuesOutsideRange(t *testing.T) {
	testCases := []struct {
		name   string
		target float64
	}{
		{name: "below supported range", target: 4.9},
		{name: "above supported range", target: 30.1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			thermostat := homeautomation.NewThermostat("hallway", 20)

			// act
			err := homeautomation.BuildSetTemperature(thermostat, tc.target).Execute()

			// assert
			assert.ErrorIs(t, err, homeautomation.ErrTemperatureOutOfRange)
			assert.Equal(t, 20.0, thermostat.Target())
		})
	}
}
