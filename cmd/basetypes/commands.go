package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/basetypes"
	"github.com/gogpu/basetypes/internal/config"
	"github.com/gogpu/basetypes/internal/textfmt"
)

// printer formats values at the configured precision.
type printer struct {
	w    io.Writer
	prec int
}

func (p printer) line(label string, vals ...float64) {
	fmt.Fprintf(p.w, "%s: %s\n", label, textfmt.FormatPrec(p.prec, vals...))
}

func (p printer) matrix(label string, m basetypes.Matrix4) {
	fmt.Fprintf(p.w, "%s:\n", label)
	for _, row := range m.Rows() {
		fmt.Fprintf(p.w, "  %s\n", textfmt.FormatPrec(p.prec, row[:]...))
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "basetypes",
		Short:        "Convert and compose rotations, matrices and colors",
		SilenceUsage: true,
	}
	out := func(cmd *cobra.Command) printer {
		return printer{w: cmd.OutOrStdout(), prec: cfg.Precision}
	}

	root.AddCommand(
		newQuatCmd(out),
		newComposeCmd(out),
		newDecomposeCmd(out),
		newSlerpCmd(out),
		newHSVCmd(out),
	)
	return root
}

func newQuatCmd(out func(*cobra.Command) printer) *cobra.Command {
	return &cobra.Command{
		Use:   "quat X Y Z ANGLE",
		Short: "Print the quaternion and matrix of an axis-angle rotation",
		Args:  cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := basetypes.ParseRotation(strings.Join(args, " "))
			if err != nil {
				return err
			}
			q := basetypes.QuaternionFromRotation(r)
			p := out(cmd)
			p.line("quaternion", q.X(), q.Y(), q.Z(), q.W())
			p.matrix("matrix", r.Matrix())
			return nil
		},
	}
}

func newComposeCmd(out func(*cobra.Command) printer) *cobra.Command {
	var translation, rotation, scale, orientation, center string
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a transformation matrix from its components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := basetypes.ParseVec3(translation)
			if err != nil {
				return fmt.Errorf("--translation: %w", err)
			}
			r, err := basetypes.ParseRotation(rotation)
			if err != nil {
				return fmt.Errorf("--rotation: %w", err)
			}
			s, err := basetypes.ParseVec3(scale)
			if err != nil {
				return fmt.Errorf("--scale: %w", err)
			}
			sr, err := basetypes.ParseRotation(orientation)
			if err != nil {
				return fmt.Errorf("--scale-orientation: %w", err)
			}
			c, err := basetypes.ParseVec3(center)
			if err != nil {
				return fmt.Errorf("--center: %w", err)
			}
			out(cmd).matrix("matrix", basetypes.Transformation(t, r, s, sr, c))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&translation, "translation", "t", "0 0 0", "translation `x y z`")
	f.StringVarP(&rotation, "rotation", "r", "0 0 1 0", "rotation `x y z angle`")
	f.StringVarP(&scale, "scale", "s", "1 1 1", "scale `x y z`")
	f.StringVar(&orientation, "scale-orientation", "0 0 1 0", "scale orientation `x y z angle`")
	f.StringVarP(&center, "center", "c", "0 0 0", "center of rotation and scale `x y z`")
	return cmd
}

func newDecomposeCmd(out func(*cobra.Command) printer) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose M00 M01 ... M33",
		Short: "Split a row-major matrix into translation, rotation, scale and shear",
		Args:  cobra.RangeArgs(1, 16),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := basetypes.ParseMatrix4(strings.Join(args, " "))
			if err != nil {
				return err
			}
			t, r, s, shear := m.DecomposeSheared()
			p := out(cmd)
			p.line("translation", t.X(), t.Y(), t.Z())
			p.line("rotation", r.X(), r.Y(), r.Z(), r.Angle())
			p.line("scale", s.X(), s.Y(), s.Z())
			p.line("shear", shear.X(), shear.Y(), shear.Z())
			return nil
		},
	}
}

func newSlerpCmd(out func(*cobra.Command) printer) *cobra.Command {
	return &cobra.Command{
		Use:   `slerp "FROM" "TO" T`,
		Short: "Interpolate between two rotations",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := basetypes.ParseRotation(args[0])
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			to, err := basetypes.ParseRotation(args[1])
			if err != nil {
				return fmt.Errorf("to: %w", err)
			}
			t, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("t: %w", err)
			}
			r := from.Slerp(to, t)
			out(cmd).line("rotation", r.X(), r.Y(), r.Z(), r.Angle())
			return nil
		},
	}
}

func newHSVCmd(out func(*cobra.Command) printer) *cobra.Command {
	var toRGB bool
	cmd := &cobra.Command{
		Use:   "hsv R G B",
		Short: "Convert an RGB color to hue, saturation and value",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := basetypes.ParseColor(strings.Join(args, " "))
			if err != nil {
				return err
			}
			p := out(cmd)
			if toRGB {
				// Components are read as hue, saturation and value.
				rgb := basetypes.ColorFromHSV(c.R(), c.G(), c.B())
				p.line("rgb", rgb.R(), rgb.G(), rgb.B())
				return nil
			}
			h, s, v := c.HSV()
			p.line("hsv", h, s, v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&toRGB, "to-rgb", false, "read H S V and print R G B instead")
	return cmd
}
