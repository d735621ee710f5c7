// Copyright (c) 2025 Colin McRae

// blocktri is a command-line driver for the blockops package. It reads a
// problem file in YAML form,
//
//	labels: [0, 0, 1]
//	matrix:
//	  - ["2", "1/3", "5"]
//	  - ["0", "1", "-4"]
//	  - ["0", "0", "7/2"]
//
// and computes the block-triangular determinant or inverse of the matrix, or
// checks that the matrix really is block triangular for its labels.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"blocktri/blockops"
	"blocktri/ratmatrix"
)

type problem struct {
	Labels []int      `yaml:"labels"`
	Matrix [][]string `yaml:"matrix"`
}

var inputFile string
var outputFile string

var rootCmd = &cobra.Command{
	Use:   "blocktri",
	Short: "Exact determinants and inverses of block-triangular matrices",
	Long: `blocktri computes, in exact rational arithmetic, the determinant and
inverse of a matrix that is triangular at the granularity of blocks: given an
integer label for each index, every entry whose column label is less than its
row label must be zero. Determinants come out as the product of diagonal
block determinants, and inverses preserve the block structure.`,
	SilenceUsage: true,
}

var detCmd = &cobra.Command{
	Use:   "det",
	Short: "Print the determinant of the matrix in the problem file",
	Args:  cobra.NoArgs,
	RunE:  runDet,
}

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Print or write the inverse of the matrix in the problem file",
	Args:  cobra.NoArgs,
	RunE:  runInvert,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the matrix is block triangular for its labels",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&inputFile, "input", "i", "", "problem file with labels and matrix entries",
	)
	invertCmd.Flags().StringVarP(
		&outputFile, "output", "o", "", "write the inverse as a problem file instead of printing it",
	)
	rootCmd.AddCommand(detCmd, invertCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDet(cmd *cobra.Command, args []string) error {
	m, labels, err := loadProblem(inputFile)
	if err != nil {
		return err
	}
	det, err := blockops.BlockTriangularDet(m, labels)
	if err != nil {
		return fmt.Errorf("could not compute the determinant: %w", err)
	}
	fmt.Println(det.RatString())
	return nil
}

func runInvert(cmd *cobra.Command, args []string) error {
	m, labels, err := loadProblem(inputFile)
	if err != nil {
		return err
	}
	inverse, err := blockops.InvertBlockTriangular(m, labels)
	if err != nil {
		return fmt.Errorf("could not invert the matrix: %w", err)
	}
	if outputFile == "" {
		fmt.Print(inverse.String())
		return nil
	}
	return writeProblem(outputFile, inverse, labels)
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, labels, err := loadProblem(inputFile)
	if err != nil {
		return err
	}
	if err = blockops.ValidateBlockTriangular(m, labels); err != nil {
		return err
	}
	numRows, _ := m.Dimensions()
	fmt.Printf(
		"the %d x %d matrix is block triangular for its %d distinct labels\n",
		numRows, numRows, len(labels.Image()),
	)
	return nil
}

// loadProblem reads a YAML problem file and returns its matrix and labeling.
// The matrix must be square with one label per row.
func loadProblem(path string) (*ratmatrix.RatMatrix, blockops.Labeling, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("no problem file; use --input")
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	var p problem
	if err = yaml.Unmarshal(contents, &p); err != nil {
		return nil, nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	numRows := len(p.Matrix)
	if len(p.Labels) != numRows {
		return nil, nil, fmt.Errorf(
			"%s has %d labels but %d matrix rows", path, len(p.Labels), numRows,
		)
	}
	if numRows == 0 {
		return ratmatrix.NewEmpty(0, 0), blockops.Labeling(nil), nil
	}
	flat := make([]string, 0, numRows*numRows)
	for i, row := range p.Matrix {
		if len(row) != numRows {
			return nil, nil, fmt.Errorf(
				"%s: row %d has %d entries but the matrix has %d rows", path, i, len(row), numRows,
			)
		}
		flat = append(flat, row...)
	}
	m, err := ratmatrix.NewFromStringArray(flat, numRows, numRows)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, blockops.Labeling(p.Labels), nil
}

// writeProblem writes a matrix and its labeling back out in the problem file
// format, so an inverse can be fed to a further run.
func writeProblem(path string, m *ratmatrix.RatMatrix, labels blockops.Labeling) error {
	numRows, numCols := m.Dimensions()
	out := problem{Labels: []int(labels), Matrix: make([][]string, numRows)}
	for i := 0; i < numRows; i++ {
		out.Matrix[i] = make([]string, numCols)
		for j := 0; j < numCols; j++ {
			entry, err := m.Get(i, j)
			if err != nil {
				return fmt.Errorf("could not read entry (%d, %d): %w", i, j, err)
			}
			out.Matrix[i][j] = entry.RatString()
		}
	}
	contents, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("could not marshal the inverse: %w", err)
	}
	if err = os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}
