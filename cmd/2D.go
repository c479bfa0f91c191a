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
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gofdm/InputParameters"
	"github.com/notargets/gofdm/model_problems"
	"github.com/notargets/gofdm/utils"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional solver, driven by a YAML input conditions file",
	Long:  `Two dimensional solver, driven by a YAML input conditions file`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		m2d.Delay = time.Duration(dr) * time.Millisecond
		sp := processInput2D(m2d)
		Run2D(m2d, sp)
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input conditions file")
	TwoDCmd.Flags().BoolP("graph", "g", false, "log the solution range while computing")
	TwoDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
}

type Model2D struct {
	ICFile string
	Graph  bool
	Delay  time.Duration
}

func processInput2D(m2d *Model2D) (sp *InputParameters.SimParameters) {
	var (
		err error
	)
	if len(m2d.ICFile) == 0 {
		exampleFile := `
########################################
Title: "Test Case"
Equation: Convection
N: [41, 41]
NumSteps: 80
Dt: 0.0025
Dx: [0.05, 0.05]
Speed: [1., 1.]
BCType: Constant
BCValue: 1.
InitType: SquareWave
########################################
`
		fmt.Printf("must supply an input parameters file (-I, --inputConditionsFile), example:\n%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(m2d.ICFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	sp = &InputParameters.SimParameters{}
	if err = sp.Parse(data); err != nil {
		fmt.Printf("error parsing input conditions: %s\n", err.Error())
		os.Exit(1)
	}
	sp.Print()
	return
}

func Run2D(m2d *Model2D, sp *InputParameters.SimParameters) {
	var (
		C   Model
		err error
	)
	if len(sp.N) != 2 || len(sp.Dx) != 2 {
		fmt.Printf("error: 2D runs need two entries in N and Dx, got N = %v, Dx = %v\n", sp.N, sp.Dx)
		os.Exit(1)
	}
	p := model_problems.Parameters{
		NumSteps: sp.NumSteps,
		Dt:       sp.Dt,
		Dx:       sp.Dx,
		Speed:    sp.Speed,
		Nu:       sp.Nu,
		Periodic: utils.ParseBCName(sp.BCType) == utils.BCPeriodic,
		BCValue:  sp.BCValue,
	}
	U := InitialCondition2D(sp.InitType, sp.N[0], sp.N[1], sp.Dx[0], sp.Dx[1])
	switch strings.ToLower(sp.Equation) {
	case "diffusion":
		p.Speed = nil
		C, err = model_problems.NewDiffusion2D(U, p)
	case "burgers":
		p.Speed = nil
		C, err = model_problems.NewBurgers2D(U, p)
	case "convection":
		fallthrough
	default:
		C, err = model_problems.NewConvection2D(U, p)
	}
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	C.Run(m2d.Graph, m2d.Delay)
}

// InitialCondition2D samples the named profile on an nx x ny uniform grid.
// SquareWave is u = 2 on the middle quarter block of the domain and 1
// elsewhere; Sine is the positive product of one sine period per axis.
func InitialCondition2D(initType string, nx, ny int, dx, dy float64) (U utils.Matrix) {
	var (
		xMax = float64(nx-1) * dx
		yMax = float64(ny-1) * dy
	)
	switch initType {
	case "Sine":
		U = utils.NewMatrix(nx, ny)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				U.Set(i, j, 1+0.5*math.Sin(2*math.Pi*float64(i)*dx/xMax)*
					math.Sin(2*math.Pi*float64(j)*dy/yMax))
			}
		}
	case "SquareWave":
		fallthrough
	default:
		U = utils.NewMatrixConst(nx, ny, 1)
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				x, y := float64(i)*dx, float64(j)*dy
				if x >= 0.25*xMax && x <= 0.5*xMax && y >= 0.25*yMax && y <= 0.5*yMax {
					U.Set(i, j, 2)
				}
			}
		}
	}
	return
}
