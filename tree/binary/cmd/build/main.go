package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/pkg/errors"

	"go.lepak.sg/sortedset/tree/binary"
)

var logger = log.Default.WithNames("build")

type args struct {
	Mode string `arg:"-m" default:"i" help:"i for iterative, r for recursive"`
	In   []int  `arg:"--in" help:"in-order traversal (read from stdin if absent)"`
	Pre  []int  `arg:"--pre" help:"pre-order traversal (read from stdin if absent)"`
}

func main() {
	err := mainErr()
	if err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	var a args
	arg.MustParse(&a)

	var impl func([]int, []int) (*binary.Tree[int], error)
	switch a.Mode {
	case "i":
		// actual type params of the function cannot be inferred
		// even though the variable has the fully instantiated type
		impl = binary.BuildFromPreAndInOrderIter[[]int, int]
	case "r":
		impl = binary.BuildFromPreAndInOrderRec[[]int, int]
	default:
		return errors.Errorf("not a valid mode: %q", a.Mode)
	}

	stdin := bufio.NewReader(os.Stdin)
	var err error
	if a.In == nil {
		fmt.Print("in-order: ")
		if a.In, err = readInts(stdin); err != nil {
			return errors.Wrap(err, "reading in-order")
		}
	}
	if a.Pre == nil {
		fmt.Print("pre-order: ")
		if a.Pre, err = readInts(stdin); err != nil {
			return errors.Wrap(err, "reading pre-order")
		}
	}

	tr, err := impl(a.Pre, a.In)
	if err != nil {
		return errors.Wrap(err, "building")
	}
	logger.Printf("built tree of %d nodes, height %d", tr.Len(), tr.Height())

	fmt.Println("tree:")
	fmt.Print(tr.String())
	return nil
}

func readInts(r *bufio.Reader) ([]int, error) {
	raw, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && raw != "") {
		return nil, err
	}

	fields := strings.Fields(raw)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i)
		}
		out[i] = n
	}
	return out, nil
}
