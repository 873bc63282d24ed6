package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/gremlin-remap/gremlin/inputtypes"
)

// Lookup translates a single value through one registry table.
type Lookup struct {
	Table string `arg:"" name:"table" help:"Table to query" enum:"profile-tag,display-name,axis-button-direction,mouse-button,hat,direction-index,vjoy-axis"`
	Value string `arg:"" name:"value" help:"Value to translate; hat accepts 'x,y' or a compass name"`
	Plain bool   `help:"Print only the result, even on a terminal" env:"GREMLIN_PLAIN"`
}

// Result is the outcome of a lookup.
type Result struct {
	Label string
	Value string
}

// Run is called by Kong when the lookup command is executed.
func (l *Lookup) Run(logger *slog.Logger) error {
	labelled := !l.Plain && term.IsTerminal(int(os.Stdout.Fd()))
	return l.Execute(os.Stdout, labelled, logger)
}

// Execute performs the lookup and writes the result to w.
func (l *Lookup) Execute(w io.Writer, labelled bool, logger *slog.Logger) error {
	res, err := Translate(l.Table, l.Value)
	if err != nil {
		logger.Debug("lookup failed", "table", l.Table, "value", l.Value, "error", err)
		return err
	}
	logger.Debug("lookup", "table", l.Table, "value", l.Value, "result", res.Value)

	if labelled {
		_, err = fmt.Fprintf(w, "%s: %s\n", res.Label, res.Value)
	} else {
		_, err = fmt.Fprintln(w, res.Value)
	}
	return err
}

// Translate converts value using the named table.
func Translate(table, value string) (Result, error) {
	switch table {
	case "profile-tag":
		t, err := inputtypes.ParseProfileTag(value)
		if err != nil {
			return Result{}, err
		}
		return Result{Label: "input type", Value: t.String()}, nil
	case "display-name":
		t, err := inputtypes.ParseProfileTag(value)
		if err != nil {
			return Result{}, err
		}
		name, err := inputtypes.DisplayName(t)
		if err != nil {
			return Result{}, err
		}
		return Result{Label: "display name", Value: name}, nil
	case "axis-button-direction":
		d, err := inputtypes.ParseAxisButtonDirection(value)
		if err != nil {
			return Result{}, err
		}
		return Result{Label: "axis button direction", Value: strconv.Itoa(int(d))}, nil
	case "mouse-button":
		b, err := inputtypes.ParseMouseButton(value)
		if err != nil {
			return Result{}, err
		}
		return Result{Label: "mouse button", Value: strconv.Itoa(int(b))}, nil
	case "hat":
		return translateHat(value)
	case "direction-index":
		idx, err := parseIndex(value)
		if err != nil {
			return Result{}, err
		}
		name, err := inputtypes.DirectionName(idx)
		if err != nil {
			return Result{}, err
		}
		return Result{Label: "direction", Value: name}, nil
	case "vjoy-axis":
		idx, err := parseIndex(value)
		if err != nil {
			return Result{}, err
		}
		name, err := inputtypes.VJoyAxisName(idx)
		if err != nil {
			return Result{}, err
		}
		return Result{Label: "vjoy axis", Value: name}, nil
	default:
		return Result{}, fmt.Errorf("unknown table %q", table)
	}
}

func translateHat(value string) (Result, error) {
	if !strings.Contains(value, ",") {
		v, err := inputtypes.ParseHatName(value)
		if err != nil {
			return Result{}, err
		}
		return Result{Label: "hat vector", Value: fmt.Sprintf("%d,%d", v.X, v.Y)}, nil
	}

	parts := strings.Split(strings.Trim(value, "() "), ",")
	if len(parts) != 2 {
		return Result{}, fmt.Errorf("invalid hat vector %q: expected x,y", value)
	}
	var v inputtypes.HatVector
	var err error
	if v.X, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return Result{}, fmt.Errorf("invalid hat vector %q: %w", value, err)
	}
	if v.Y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return Result{}, fmt.Errorf("invalid hat vector %q: %w", value, err)
	}
	name, err := inputtypes.HatVectorName(v)
	if err != nil {
		return Result{}, err
	}
	return Result{Label: "hat direction", Value: name}, nil
}

func parseIndex(value string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", value, err)
	}
	return idx, nil
}
