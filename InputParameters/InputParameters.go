package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimParameters struct {
	Title    string    `yaml:"Title"`
	Equation string    `yaml:"Equation"` // Convection, Diffusion or Burgers
	N        []int     `yaml:"N"`        // Grid points per axis
	NumSteps int       `yaml:"NumSteps"`
	Dt       float64   `yaml:"Dt"`
	Dx       []float64 `yaml:"Dx"`    // Grid spacing per axis
	Speed    []float64 `yaml:"Speed"` // Omit for the self-advecting form
	Nu       float64   `yaml:"Nu"`
	BCType   string    `yaml:"BCType"` // Constant or Periodic
	BCValue  float64   `yaml:"BCValue"`
	InitType string    `yaml:"InitType"` // SquareWave or Sine
}

func (sp *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= Equation\n", sp.Equation)
	fmt.Printf("%v\t\t= N\n", sp.N)
	fmt.Printf("[%d]\t\t= NumSteps\n", sp.NumSteps)
	fmt.Printf("%8.5f\t= Dt\n", sp.Dt)
	fmt.Printf("%v\t= Dx\n", sp.Dx)
	if sp.Speed != nil {
		fmt.Printf("%v\t= Speed\n", sp.Speed)
	} else {
		fmt.Printf("[self-advecting]\t= Speed\n")
	}
	fmt.Printf("%8.5f\t= Nu\n", sp.Nu)
	fmt.Printf("[%s]\t\t= BCType\n", sp.BCType)
	fmt.Printf("%8.5f\t= BCValue\n", sp.BCValue)
	fmt.Printf("[%s]\t= InitType\n", sp.InitType)
}
