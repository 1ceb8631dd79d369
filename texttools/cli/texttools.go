// Package cli is the texttools command: case conversion, text statistics,
// password generation, JSON/URL/Base64 encoders and Markdown rendering.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/cli"
	"fortio.org/devtools/codec"
	"fortio.org/devtools/markdown"
	"fortio.org/devtools/password"
	"fortio.org/devtools/textcase"
	"fortio.org/devtools/wordcount"
	"fortio.org/log"
)

// Limit on stdin size, these tools are meant for interactive sized text.
const maxInput = 16 << 20

var errUsage = errors.New("usage error")

// Settings are the flag driven options of the sub commands.
type Settings struct {
	Password password.Options
	JSON     bool // count output as JSON
	Indent   int  // json format indentation
}

func Main() int {
	lengthFlag := flag.Int("length", password.DefaultLength,
		fmt.Sprintf("Password `length` (%d-%d)", password.MinLength, password.MaxLength))
	noUpperFlag := flag.Bool("no-upper", false, "Password without upper case letters")
	noLowerFlag := flag.Bool("no-lower", false, "Password without lower case letters")
	noDigitsFlag := flag.Bool("no-digits", false, "Password without digits")
	noSymbolsFlag := flag.Bool("no-symbols", false, "Password without symbols")
	jsonFlag := flag.Bool("json", false, "Output count statistics as JSON")
	indentFlag := flag.Int("indent", codec.DefaultIndent, "Indentation `spaces` for json format, 0 to minify")
	cli.MinArgs = 1
	cli.MaxArgs = 2
	cli.ArgsHelp = " case MODE|count|password|json format|json minify|url encode|url decode" +
		"|base64 encode|base64 decode|markdown\nMODE is one of: " + strings.Join(textcase.Modes(), ", ") +
		"\nAll but password read stdin."
	cli.Main()
	settings := Settings{
		Password: password.Options{
			Length:    *lengthFlag,
			Uppercase: !*noUpperFlag,
			Lowercase: !*noLowerFlag,
			Digits:    !*noDigitsFlag,
			Symbols:   !*noSymbolsFlag,
		},
		JSON:   *jsonFlag,
		Indent: *indentFlag,
	}
	err := Run(os.Stdin, os.Stdout, flag.Args(), settings)
	if err != nil {
		return log.FErrf("%v", err)
	}
	return 0
}

// Run executes one sub command.
func Run(in io.Reader, out io.Writer, args []string, settings Settings) error {
	switch args[0] {
	case "case":
		sub, err := subCommand(args, textcase.Modes()...)
		if err != nil {
			return err
		}
		mode, err := textcase.ParseMode(sub)
		if err != nil {
			return err
		}
		text, err := readInput(in)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, textcase.Convert(text, mode))
		return err
	case "count":
		text, err := readInput(in)
		if err != nil {
			return err
		}
		return writeStats(out, wordcount.Count(text), settings.JSON)
	case "password":
		pw, err := password.Generate(settings.Password)
		if err != nil {
			return err
		}
		strength := password.Strength(pw)
		log.LogVf("Strength %d%% (%s)", strength, password.Label(strength))
		_, err = fmt.Fprintln(out, pw)
		return err
	case "json", "url", "base64":
		return transform(in, out, args, settings)
	case "markdown":
		text, err := readInput(in)
		if err != nil {
			return err
		}
		html, err := markdown.ToHTML(text)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, html)
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func subCommand(args []string, choices ...string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: %s needs one of: %s", errUsage, args[0], strings.Join(choices, ", "))
	}
	return args[1], nil
}

// transform runs the json, url and base64 encoders and decoders.
// Blank input gives empty output.
func transform(in io.Reader, out io.Writer, args []string, settings Settings) error {
	var choices []string
	if args[0] == "json" {
		choices = []string{"format", "minify"}
	} else {
		choices = []string{"encode", "decode"}
	}
	sub, err := subCommand(args, choices...)
	if err != nil {
		return err
	}
	var f func(string) (string, error)
	switch args[0] + " " + sub {
	case "json format":
		f = func(s string) (string, error) { return codec.FormatJSON(s, settings.Indent) }
	case "json minify":
		f = codec.MinifyJSON
	case "url encode":
		f = func(s string) (string, error) { return codec.URLEncode(s), nil }
	case "url decode":
		f = codec.URLDecode
	case "base64 encode":
		f = func(s string) (string, error) { return codec.Base64Encode(s), nil }
	case "base64 decode":
		f = codec.Base64Decode
	default:
		return fmt.Errorf("%w: unknown %s command %q", errUsage, args[0], sub)
	}
	text, err := readInput(in)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	// Line oriented input: the final newline is not part of the text.
	text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	res, err := f(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, res)
	return err
}

func readInput(in io.Reader) (string, error) {
	b, err := io.ReadAll(io.LimitReader(in, maxInput+1))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if len(b) > maxInput {
		return "", fmt.Errorf("input larger than %d bytes", maxInput)
	}
	return string(b), nil
}

func writeStats(out io.Writer, s wordcount.Stats, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	unit := "mins"
	if s.ReadingMinutes == 1 {
		unit = "min"
	}
	_, err := fmt.Fprintf(out,
		"Characters: %d\nCharacters (no spaces): %d\nWords: %d\nSentences: %d\nParagraphs: %d\nReading time: %d %s\n",
		s.Characters, s.CharactersNoSpaces, s.Words, s.Sentences, s.Paragraphs, s.ReadingMinutes, unit)
	return err
}
