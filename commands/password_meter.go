package commands

type PasswordMeterCommand struct {
	Check   CheckCommand   `command:"check" description:"Evaluate the strength of one or more passwords"`
	Update  UpdateCommand  `command:"update" description:"Update password-meter to the latest version"`
	Version VersionCommand `command:"version" description:"Displays password-meter version" alias:"V"`
}

var PasswordMeter PasswordMeterCommand
