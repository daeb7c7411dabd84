package sysreg

// DeviceDef is the root of a register table file.
type DeviceDef struct {
	Package     string         `yaml:"package"`
	Description string         `yaml:"description"`
	Register    []*RegisterDef `yaml:"registers"`
	Source      string         `yaml:"-"` // file the table was read from
}

// RegisterDef describes one system register reached with MRS/MSR.
type RegisterDef struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Encoding    EncodingDef `yaml:"encoding"`
	Size        int         `yaml:"size"`
	Access      AccessDef   `yaml:"access"`
	Field       []*FieldDef `yaml:"fields"`
}

type FieldDef struct {
	Name            string                `yaml:"name"`
	Description     string                `yaml:"description"`
	BitRange        BitRangeDef           `yaml:"bits"`
	EnumeratedValue []*EnumeratedValueDef `yaml:"values"`
}

type EnumeratedValueDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Value       Uint64 `yaml:"value"`
}
