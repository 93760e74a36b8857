// Command compadre compresses and decompresses text files using one of
// three pluggable probability models: a static Shannon-Fano code, a
// static Huffman code, or an adaptive order-K PPM model.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/mororo18/compadre/alphabet"
	"github.com/mororo18/compadre/compressor"
	"github.com/mororo18/compadre/huffman"
	"github.com/mororo18/compadre/model"
	"github.com/mororo18/compadre/ppm"
	"github.com/mororo18/compadre/shannonfano"
	"github.com/mororo18/compadre/staticmodel"
)

var (
	errMissingInput  = errors.New("compadre: -i/--input is required")
	errMissingOutput = errors.New("compadre: -o/--output is required")
	errModeConflict  = errors.New("compadre: exactly one of -c/--compress or -d/--decompress is required")
	errUnknownModel  = errors.New("compadre: -model must be one of shannonfano, huffman, ppm")
)

func main() {
	app := &cli.App{
		Name:  "compadre",
		Usage: "compress or decompress text with a prefix code and a pluggable probability model",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "input file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file"},
			&cli.BoolFlag{Name: "compress", Aliases: []string{"c"}, Usage: "compress the input"},
			&cli.BoolFlag{Name: "decompress", Aliases: []string{"d"}, Usage: "decompress the input"},
			&cli.StringFlag{Name: "model", Value: "ppm", Usage: "shannonfano, huffman, or ppm"},
			&cli.IntFlag{Name: "order", Value: 3, Usage: "PPM context order (only with -model ppm)"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	input := ctx.String("input")
	output := ctx.String("output")
	compress := ctx.Bool("compress")
	decompress := ctx.Bool("decompress")

	if input == "" {
		return cli.Exit(errors.Wrap(errMissingInput, "compadre").Error(), 1)
	}
	if output == "" {
		return cli.Exit(errors.Wrap(errMissingOutput, "compadre").Error(), 1)
	}
	if compress == decompress {
		return cli.Exit(errors.Wrap(errModeConflict, "compadre").Error(), 1)
	}

	m, c, err := buildModel(ctx.String("model"), ctx.Int("order"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return cli.Exit(errors.Wrap(err, "compadre: reading input").Error(), 1)
	}

	var result []byte
	if compress {
		result, err = compressor.Compress(data, m, c)
	} else {
		result, err = compressor.Decompress(data, m, c)
	}
	if err != nil {
		return cli.Exit(errors.Wrap(err, "compadre").Error(), 1)
	}

	if err := os.WriteFile(output, result, 0644); err != nil {
		return cli.Exit(errors.Wrap(err, "compadre: writing output").Error(), 1)
	}
	return nil
}

// buildModel selects the model.Model/model.Coder pair named by modelName.
// shannonfano and huffman both run the fixed Portuguese letter frequencies
// through a static model; ppm is the only adaptive choice and is the only
// one that reads order.
func buildModel(modelName string, order int) (model.Model, model.Coder, error) {
	switch modelName {
	case "shannonfano":
		m, err := staticmodel.New(alphabet.Portuguese, alphabet.IntegerWeights())
		if err != nil {
			return nil, nil, errors.Wrap(err, "compadre: building static model")
		}
		return m, shannonfano.Coder{}, nil
	case "huffman":
		m, err := staticmodel.New(alphabet.Portuguese, alphabet.IntegerWeights())
		if err != nil {
			return nil, nil, errors.Wrap(err, "compadre: building static model")
		}
		return m, huffman.Coder{}, nil
	case "ppm":
		if order < 0 {
			return nil, nil, errors.Errorf("compadre: -order must be non-negative, got %d", order)
		}
		return ppm.New(alphabet.Portuguese, order), huffman.Coder{}, nil
	default:
		return nil, nil, errUnknownModel
	}
}
