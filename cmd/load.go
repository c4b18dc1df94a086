package cmd

import (
	"context"

	"github.com/gedtk/gedtree/internal/iogedcom"
	"github.com/gedtk/gedtree/pkg/tree"
)

// holder keeps the most recently loaded tree. Commands that load a
// file publish it here so the swap is atomic; a long-lived process
// embedding this package sees either the old tree or the new one,
// never a partially built one.
var holder = tree.NewHolder(nil)

func loadTree(ctx context.Context, path string) (*tree.Tree, error) {
	ld := iogedcom.New(cfg)
	t, err := ld.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	holder.Replace(t)
	return t, nil
}
