package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"go.lepak.sg/sortedset/tree/binary"
)

var logger = log.Default.WithNames("random")

type args struct {
	Seed        int64 `arg:"-s" help:"first seed (default current unix time in ns)"`
	Num         int   `arg:"-n" default:"10" help:"number of nodes in each tree"`
	Trees       int   `arg:"-t" default:"1" help:"number of trees, seeded consecutively"`
	Balanced    bool  `arg:"-b" help:"keep building each tree until it is balanced"`
	MaxAttempts int   `arg:"-a" default:"1000" help:"give up on a balanced tree after this many attempts"`
	Parallel    int   `arg:"-p" default:"4" help:"trees built at once"`
}

func main() {
	err := mainErr()
	if err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

type result struct {
	seed     int64
	tree     *binary.Tree[int]
	attempts int
}

func mainErr() error {
	var a args
	arg.MustParse(&a)

	if a.Seed == 0 {
		a.Seed = time.Now().UnixNano()
	}
	if a.Trees < 1 {
		return errors.Errorf("need at least one tree, got %d", a.Trees)
	}
	if a.Parallel < 1 {
		return errors.Errorf("need at least one tree at once, got %d", a.Parallel)
	}

	results := make([]result, a.Trees)

	var eg errgroup.Group
	eg.SetLimit(a.Parallel)
	for i := range results {
		i := i
		seed := a.Seed + int64(i)
		eg.Go(func() error {
			r := result{seed: seed}
			if a.Balanced {
				tr, attempts, err := binary.BuildRandomBalanced(a.Num, seed, a.MaxAttempts)
				if err != nil {
					return errors.Wrapf(err, "seed %d", seed)
				}
				r.tree, r.attempts = tr, attempts
			} else {
				r.tree = binary.BuildRandom(a.Num, seed)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	total := 0
	for _, r := range results {
		report(r, a.Balanced)
		total += r.attempts
	}
	if a.Balanced {
		logger.Printf("%s trees of %s nodes took %s attempts",
			humanize.Comma(int64(a.Trees)), humanize.Comma(int64(a.Num)), humanize.Comma(int64(total)))
	}
	return nil
}

func report(r result, balanced bool) {
	tr := r.tree

	preorder := make([]int, 0, tr.Len())
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, tr.Len())
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	var b strings.Builder
	fmt.Fprintln(&b, "seed:", r.seed)
	fmt.Fprintln(&b, "preorder:", preorder)
	fmt.Fprintln(&b, "inorder:", inorder)
	fmt.Fprintln(&b, "tree:")
	fmt.Fprint(&b, tr.String())
	fmt.Fprintln(&b, "height:", tr.Height(), "ideal:", tr.IdealHeight())
	if balanced {
		fmt.Fprintln(&b, "attempts:", r.attempts)
	}
	os.Stdout.WriteString(b.String())
}
