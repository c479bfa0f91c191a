/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gofdm/FD1D"
	"github.com/notargets/gofdm/model_problems"
	"github.com/notargets/gofdm/utils"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional model problem solutions",
	Long: `
Executes the explicit finite difference solver for a variety of model problems,

gofdm 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{}
		fmt.Println("1D called")
		mr, _ := cmd.Flags().GetInt("model")
		m1d.ModelRun = ModelType1D(mr)
		m1d.N, _ = cmd.Flags().GetInt("n")
		m1d.NumSteps, _ = cmd.Flags().GetInt("steps")
		m1d.XMax, _ = cmd.Flags().GetFloat64("xMax")
		m1d.Dt, _ = cmd.Flags().GetFloat64("dt")
		m1d.Speed, _ = cmd.Flags().GetFloat64("speed")
		m1d.Nu, _ = cmd.Flags().GetFloat64("nu")
		m1d.Periodic, _ = cmd.Flags().GetBool("periodic")
		m1d.BCValue, _ = cmd.Flags().GetFloat64("bcValue")
		m1d.InitType, _ = cmd.Flags().GetString("initType")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr)
		Run1D(m1d)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	var (
		ModelRun = M_1DConvectLinear
	)
	N, NumSteps, Dt, Nu := Defaults1D(ModelRun)
	OneDCmd.Flags().IntP("model", "m", int(ModelRun), "model to run: 0 = LinearConvection, 1 = NonlinearConvection, 2 = Diffusion, 3 = Burgers")
	OneDCmd.Flags().IntP("n", "n", N, "number of grid points")
	OneDCmd.Flags().IntP("steps", "s", NumSteps, "number of time steps")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().Float64("xMax", 2.0, "domain extent, grid covers [0, xMax]")
	OneDCmd.Flags().Float64("dt", Dt, "time step size - decrease for stability")
	OneDCmd.Flags().Float64("speed", 1.0, "constant wave speed (linear convection)")
	OneDCmd.Flags().Float64("nu", Nu, "diffusivity (diffusion and Burgers)")
	OneDCmd.Flags().Bool("periodic", false, "wrap the domain instead of holding the boundary fixed")
	OneDCmd.Flags().Float64("bcValue", 0, "ghost cell value for the fixed value boundary")
	OneDCmd.Flags().String("initType", "SquareWave", "initial condition: SquareWave or Sine")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
}

type Model1D struct {
	N, NumSteps int
	Delay       time.Duration
	ModelRun    ModelType1D
	XMax        float64
	Dt          float64
	Speed       float64
	Nu          float64
	Periodic    bool
	BCValue     float64
	InitType    string
	Graph       bool
}

type ModelType1D uint8

const (
	M_1DConvectLinear ModelType1D = iota
	M_1DConvectNL
	M_1DDiffusion
	M_1DBurgers
)

var (
	def_N     = []int{41, 41, 41, 101}
	def_STEPS = []int{25, 25, 20, 100}
	def_DT    = []float64{0.025, 0.025, 0.0015, 0.0007}
	def_NU    = []float64{0, 0, 0.3, 0.07}
)

type Model interface {
	Run(graph bool, graphDelay ...time.Duration)
}

func Run1D(m1d *Model1D) {
	var (
		C   Model
		err error
		p   = model_problems.Parameters{
			NumSteps: m1d.NumSteps,
			Dt:       m1d.Dt,
			Dx:       []float64{m1d.XMax / float64(m1d.N-1)},
			Nu:       m1d.Nu,
			Periodic: m1d.Periodic,
			BCValue:  m1d.BCValue,
		}
	)
	U := InitialCondition1D(m1d.InitType, m1d.N, m1d.XMax)
	switch m1d.ModelRun {
	case M_1DConvectNL:
		C, err = model_problems.NewConvection1D(U, p)
	case M_1DDiffusion:
		C, err = model_problems.NewDiffusion1D(U, p)
	case M_1DBurgers:
		C, err = model_problems.NewBurgers1D(U, p)
	case M_1DConvectLinear:
		fallthrough
	default:
		p.Speed = []float64{m1d.Speed}
		C, err = model_problems.NewConvection1D(U, p)
	}
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	C.Run(m1d.Graph, m1d.Delay*time.Millisecond)
}

func Defaults1D(model ModelType1D) (N, NumSteps int, Dt, Nu float64) {
	return def_N[model], def_STEPS[model], def_DT[model], def_NU[model]
}

// InitialCondition1D samples the named profile on a uniform grid covering
// [0, xMax]. SquareWave is the classic hat, u = 2 on the middle quarter of
// the domain and 1 elsewhere; Sine is one full period offset to stay
// positive.
func InitialCondition1D(initType string, N int, xMax float64) (U utils.Vector) {
	X, _ := FD1D.UniformGrid1D(0, xMax, N)
	switch initType {
	case "Sine":
		U = X.Copy().Apply(func(x float64) float64 {
			return 1 + 0.5*math.Sin(2*math.Pi*x/xMax)
		})
	case "SquareWave":
		fallthrough
	default:
		U = utils.NewVectorConst(N, 1)
		for i := 0; i < N; i++ {
			if x := X.AtVec(i); x >= 0.25*xMax && x <= 0.5*xMax {
				U.Set(i, 2)
			}
		}
	}
	return
}
