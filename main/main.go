package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/shortrange"
	"github.com/phil-mansfield/shortrange/io"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var simulate, exampleConfig string
	vars := map[string]*string{
		"Simulate":      &simulate,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&simulate, "Simulate", "", "Configuration file for [Simulate] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "", "Prints an example "+
			"configuration file of the specified type to stdout. The only "+
			"accepted argument is 'Simulate'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Simulate":
		con, err := io.ReadSimulateConfig(simulate)
		if err != nil {
			log.Fatal(err.Error())
		}

		fg, err := setupFiles(&con.SharedConfig)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer fg.Close()

		if err := simulateMain(con); err != nil {
			log.Fatal(err.Error())
		}

	case "ExampleConfig":
		switch exampleConfig {
		case "Simulate":
			fmt.Println(io.ExampleSimulateFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Simulate'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but shortrange "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupFiles redirects logging and starts profiling if requested.
func setupFiles(con *io.SharedConfig) (*FileGroup, error) {
	fg := &FileGroup{}

	if con.ValidLogFile() {
		var err error
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			return nil, err
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		var err error
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			fg.Close()
			return nil, err
		}
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			fg.prof.Close()
			fg.prof = nil
			fg.Close()
			return nil, err
		}
	}

	return fg, nil
}

// loadParticles reads the initial conditions from con.Input if it is set
// and generates them otherwise.
func loadParticles(
	con *io.SimulateConfig,
) (ps shortrange.Particles, size float64, err error) {
	if !con.ValidInput() {
		size = con.BoxSize(con.Particles)
		return io.InitParticles(con.Particles, size, con.Seed), size, nil
	}

	ps, err = io.ReadParticles(con.Input)
	if err != nil {
		return nil, 0, err
	}
	size = con.BoxSize(len(ps))
	if err = io.CheckBounds(ps, size); err != nil {
		return nil, 0, err
	}
	return ps, size, nil
}

// simulateMain runs the simulation described by con.
func simulateMain(con *io.SimulateConfig) error {
	ps, size, err := loadParticles(con)
	if err != nil {
		return err
	}

	var tw *io.TrajectoryWriter
	if con.ValidOutput() {
		f, err := os.Create(con.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		tw = io.NewTrajectoryWriter(f)
	}

	sim := shortrange.NewSimulation(con.Constants(), con.SimulationMode())
	sim.Refresh = con.SimulationRefresh()

	log.Printf(
		"Simulating %d particles in a box of width %g for %d steps "+
			"(%s, %s).\n", len(ps), size, con.Steps, sim.Mode, sim.Refresh,
	)

	t0 := time.Now()
	sim.InitSimulation(ps, size)

	if tw != nil {
		if err := tw.WriteFrame(ps, size); err != nil {
			return err
		}
	}

	for step := 1; step <= con.Steps; step++ {
		sim.SimulateOneStep(ps, size)

		if step%con.SaveFreq == 0 {
			if tw != nil {
				if err := tw.WriteFrame(ps, size); err != nil {
					return err
				}
			}
			log.Printf("Finished step %d of %d.\n", step, con.Steps)
		}
	}

	elapsed := time.Since(t0).Seconds()
	log.Printf("Simulation Time = %g seconds for %d particles.\n", elapsed, len(ps))

	if tw != nil {
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if con.ValidPlot() {
		io.PlotSnapshot(con.Plot, ps, size, con.Steps)
		plt.Execute()
	}

	return nil
}
