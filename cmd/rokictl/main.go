// Command rokictl loads a chain file and runs forward kinematics or
// inverse dynamics against it from the command line.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	roki "github.com/sugihara-lab/roki"
	"github.com/sugihara-lab/roki/config"
	"github.com/sugihara-lab/roki/rlog"
	"github.com/sugihara-lab/roki/spatial"
	"github.com/urfave/cli/v2"
)

var log = rlog.Default("rokictl")

func main() {
	app := &cli.App{
		Name:  "rokictl",
		Usage: "inspect and drive a roki kinematic chain file",
		Commands: []*cli.Command{
			fkCommand(),
			idCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Errorw("rokictl failed", "error", err)
		os.Exit(1)
	}
}

func fkCommand() *cli.Command {
	return &cli.Command{
		Name:      "fk",
		Usage:     "run forward kinematics and print each link's world frame",
		ArgsUsage: "<chain-file>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "joint", Usage: "name=q0,q1,... joint displacement override, repeatable"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one chain-file argument", 1)
			}
			chn, err := loadChain(c.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err := applyJointOverrides(chn, c.StringSlice("joint")); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			// Rerun FK at the overridden posture (a nil q would reset every
			// joint to neutral).
			q := make([]float64, chn.TotalDOF())
			if err := chn.GetJointDisAll(q); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if _, err := chn.FK(q); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			printFrames(chn)
			return nil
		},
	}
}

func idCommand() *cli.Command {
	return &cli.Command{
		Name:      "id",
		Usage:     "integrate a chain-continuation trajectory and print COM/ZMP/yaw torque at each step",
		ArgsUsage: "<chain-file>",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "dt", Value: 0.01, Usage: "time step in seconds"},
			&cli.IntFlag{Name: "steps", Value: 10, Usage: "number of steps to integrate"},
			&cli.StringSliceFlag{Name: "joint", Usage: "name=q0,q1,... joint displacement target at the final step, repeatable"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one chain-file argument", 1)
			}
			chn, err := loadChain(c.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			start := make([]float64, chn.TotalDOF())
			if err := chn.GetJointDisAll(start); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err := applyJointOverrides(chn, c.StringSlice("joint")); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			target := make([]float64, chn.TotalDOF())
			if err := chn.GetJointDisAll(target); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			// Rewind to the loaded posture; the loop moves toward target.
			if err := chn.SetJointDisAll(start); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			dt := c.Float64("dt")
			steps := c.Int("steps")
			q := make([]float64, chn.TotalDOF())
			step := make([]float64, chn.TotalDOF())
			for i := 0; i < steps; i++ {
				frac := float64(i+1) / float64(steps)
				for k := range step {
					step[k] = start[k] + frac*(target[k]-start[k])
				}
				dq, err := chn.FKCNT(step, dt)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				if err := chn.GetJointDisAll(q); err != nil {
					return cli.Exit(err.Error(), 1)
				}
				// Populate each link's wrench (needed for ZMP/yaw torque)
				// at the velocity FKCNT just inferred, zero acceleration.
				if _, err := chn.ID(q, dq, nil, spatial.ZeroSpatial6D, spatial.ZeroSpatial6D); err != nil {
					return cli.Exit(err.Error(), 1)
				}
				printStep(chn, i)
			}
			return nil
		},
	}
}

func loadChain(path string) (*roki.Chain, error) {
	var doc *config.Document
	var err error
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		doc, err = config.LoadYAMLFile(path)
	} else {
		doc, err = config.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return config.ToChain(doc, log)
}

// applyJointOverrides parses "name=q0,q1,..." flags and sets each named
// joint's displacement by link name.
func applyJointOverrides(c *roki.Chain, overrides []string) error {
	for _, o := range overrides {
		name, vals, ok := strings.Cut(o, "=")
		if !ok {
			return fmt.Errorf("rokictl: malformed --joint %q, expected name=q0,q1,...", o)
		}
		idx, err := c.LinkByName(name)
		if err != nil {
			return err
		}
		var q []float64
		for _, f := range strings.Split(vals, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return fmt.Errorf("rokictl: joint %q: %w", name, err)
			}
			q = append(q, v)
		}
		if err := c.SetJointDis([]int{idx}, q); err != nil {
			return err
		}
	}
	return nil
}

func printFrames(c *roki.Chain) {
	for _, l := range c.Links {
		p := l.WorldFrame.Pos
		fmt.Printf("%-16s pos=(% .4f % .4f % .4f)\n", l.Name, p.X, p.Y, p.Z)
	}
	com := c.UpdateCOM()
	fmt.Printf("%-16s (% .4f % .4f % .4f)\n", "com", com.X, com.Y, com.Z)
}

func printStep(c *roki.Chain, step int) {
	com := c.UpdateCOM()
	zmp, zmpOK := c.ZMP()
	yaw, yawOK := c.YawTorque()

	zmpStr := "n/a"
	if zmpOK {
		zmpStr = fmt.Sprintf("(% .4f % .4f % .4f)", zmp.X, zmp.Y, zmp.Z)
	}
	yawStr := "n/a"
	if yawOK {
		yawStr = fmt.Sprintf("% .4f", yaw)
	}
	fmt.Printf("step=%-4d com=(% .4f % .4f % .4f) zmp=%s yaw=%s\n",
		step, com.X, com.Y, com.Z, zmpStr, yawStr)
}
