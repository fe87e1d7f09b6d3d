package config

import (
	"fmt"
	"io"
)

// Save writes doc back out in the native tagged-section format. Init
// joint lines are only written for links whose q was actually recorded in
// doc.Init.JointInit (FromChain only records non-neutral joints), so a
// round trip leaves omitted joints at neutral.
func Save(w io.Writer, doc *Document) error {
	if _, err := fmt.Fprintf(w, "[chain]\nname: %s\n\n", doc.ChainName); err != nil {
		return err
	}
	for _, l := range doc.Links {
		if err := writeLink(w, l); err != nil {
			return err
		}
	}
	return writeInit(w, doc.Init)
}

func writeLink(w io.Writer, l LinkSpec) error {
	fmt.Fprintf(w, "[link]\nname: %s\n", l.Name)
	if l.Parent != "" {
		fmt.Fprintf(w, "parent: %s\n", l.Parent)
	}
	fmt.Fprintf(w, "mass: %g\n", l.Mass)
	fmt.Fprintf(w, "com: %g %g %g\n", l.COM.X, l.COM.Y, l.COM.Z)
	fmt.Fprintf(w, "inertia: %g %g %g %g %g %g %g %g %g\n",
		l.Inertia.At(0, 0), l.Inertia.At(0, 1), l.Inertia.At(0, 2),
		l.Inertia.At(1, 0), l.Inertia.At(1, 1), l.Inertia.At(1, 2),
		l.Inertia.At(2, 0), l.Inertia.At(2, 1), l.Inertia.At(2, 2))
	if l.DH != nil {
		fmt.Fprintf(w, "dh: %g %g %g\n", l.DH.A, l.DH.D, l.DH.Alpha)
	} else {
		fmt.Fprintf(w, "joint: %s\n", l.JointKind)
		fmt.Fprintf(w, "origin.pos: %g %g %g\n", l.OriginPos.X, l.OriginPos.Y, l.OriginPos.Z)
		fmt.Fprintf(w, "origin.att: %g %g %g\n", l.OriginAtt.X, l.OriginAtt.Y, l.OriginAtt.Z)
	}
	for i := range l.QMin {
		fmt.Fprintf(w, "limit: %g %g\n", l.QMin[i], l.QMax[i])
	}
	for _, s := range l.Shapes {
		fmt.Fprintf(w, "shape: %s\n", s)
	}
	if l.Motor != "" {
		fmt.Fprintf(w, "motor: %s\n", l.Motor)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeInit(w io.Writer, init InitSpec) error {
	fmt.Fprintf(w, "[init]\npos: %g %g %g\n", init.Pos.X, init.Pos.Y, init.Pos.Z)
	fmt.Fprintf(w, "att: %g %g %g\n", init.Att.X, init.Att.Y, init.Att.Z)
	for name, q := range init.JointInit {
		fmt.Fprintf(w, "joint: %s", name)
		for _, v := range q {
			fmt.Fprintf(w, " %g", v)
		}
		fmt.Fprintln(w)
	}
	return nil
}
