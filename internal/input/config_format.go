package input

// Keyspec is a key sequence as found in a config file, e.g. "<c-n>" or "gg".
type Keyspec string

// Actionspec names an action as found in a config file, e.g. "next".
type Actionspec string

// Modename names an input mode.
type Modename string

// InputConfig holds the key mappings for a rotator and for its menu, by
// which the defaults can be overridden.
type InputConfig struct {
	Rotator map[Keyspec]Actionspec `yaml:"rotator"`
	Menu    map[Keyspec]Actionspec `yaml:"menu"`
}
