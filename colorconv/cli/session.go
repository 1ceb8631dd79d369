package cli

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/devtools/colormodel"
	"fortio.org/devtools/tcolor"
	"fortio.org/log"
)

// Commands are the interactive command names, for completion.
var Commands = []string{"b", "g", "h", "help", "hex", "hsl", "l", "name", "names", "quit", "r", "rgb", "s"}

const help = `Commands:
  #rrggbb | #rgb | hex VALUE  edit the hex field (invalid input is rejected)
  r|g|b VALUE                 edit one rgb channel (clamped to 0-255)
  h|s|l VALUE                 edit one hsl channel (clamped to 0-360, 0-100)
  rgb R G B | hsl H S L       edit all channels at once
  name NAME | NAME            use a named color
  names                       list the named colors
  help | quit`

// Session is one interactive editing session over a single Model.
type Session struct {
	Model *colormodel.Model
	Out   io.Writer
	co    tcolor.ColorOutput
	width int
}

func NewSession(out io.Writer, cfg Config) (*Session, error) {
	s := &Session{
		Model: colormodel.NewModel(),
		Out:   out,
		co:    tcolor.ColorOutput{TrueColor: cfg.TrueColor},
		width: cfg.Width,
	}
	if cfg.Default != "" {
		if err := s.setAny(cfg.Default); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// InvalidLabel marks the swatch while the hex input is invalid.
const InvalidLabel = "✗ invalid"

// Render prints the current state of the model.
func (s *Session) Render() {
	m := s.Model
	// While the hex input is invalid the swatch is red but the numeric fields
	// keep the last valid color.
	label := ""
	if !m.Valid() {
		label = InvalidLabel
	}
	fmt.Fprintln(s.Out, Describe(s.co, s.width, m.Preview(), label, m.RGB(), m.HSL(), m.HexInput()))
	if !m.Valid() {
		fmt.Fprintln(s.Out, tcolor.Red+"Please enter a valid HEX color"+tcolor.Reset)
	}
}

// Exec runs one command line and renders the result. Returns true to quit.
func (s *Session) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		s.Render()
		return false
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]
	var err error
	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(s.Out, help)
		return false
	case "names":
		fmt.Fprintln(s.Out, strings.Join(colormodel.Names(), " "))
		return false
	case "hex":
		err = s.needArgs(args, 1)
		if err == nil {
			err = s.Model.SetHex(args[0])
		}
	case "r", "g", "b":
		err = s.needArgs(args, 1)
		if err == nil {
			err = s.Model.SetRGBChannel(cmd[0], args[0])
		}
	case "h", "s", "l":
		err = s.needArgs(args, 1)
		if err == nil {
			err = s.Model.SetHSLChannel(cmd[0], args[0])
		}
	case "rgb", "hsl":
		err = s.setAll(cmd, args)
	case "name":
		err = s.needArgs(args, 1)
		if err == nil {
			err = s.Model.SetNamed(strings.Join(args, " "))
		}
	default:
		err = s.setAny(strings.TrimSpace(line))
	}
	if err != nil {
		log.Errf("%v", err)
	}
	s.Render()
	return false
}

func (s *Session) needArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d argument(s), got %d", n, len(args))
	}
	return nil
}

func (s *Session) setAll(cmd string, args []string) error {
	// Also accept the functional notation, possibly with spaces: "rgb(1, 2, 3)".
	if len(args) > 0 && strings.HasPrefix(args[0], "(") {
		return s.setAny(cmd + strings.Join(args, ""))
	}
	if err := s.needArgs(args, 3); err != nil {
		return err
	}
	v := [3]int{}
	for i, a := range args {
		v[i] = colormodel.ParseChannel(strings.TrimSuffix(a, ","))
	}
	if cmd == "rgb" {
		s.Model.SetRGB(colormodel.NewRGB(v[0], v[1], v[2]))
	} else {
		s.Model.SetHSL(colormodel.NewHSL(v[0], v[1], v[2]))
	}
	return nil
}

// setAny handles a bare hex value, a color name or a functional notation.
func (s *Session) setAny(input string) error {
	if strings.HasPrefix(input, "#") || colormodel.ValidateHex(input) {
		return s.Model.SetHex(input)
	}
	if _, ok := colormodel.Named(input); ok {
		return s.Model.SetNamed(input)
	}
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "hsl(") {
		hsl, err := colormodel.ParseHSL(input)
		if err != nil {
			return err
		}
		s.Model.SetHSL(hsl)
		return nil
	}
	if strings.HasPrefix(lower, "rgb(") {
		c, err := colormodel.Parse(input)
		if err != nil {
			return err
		}
		s.Model.SetRGB(c)
		return nil
	}
	return fmt.Errorf("unknown command or color %q, type help for the list of commands", input)
}
