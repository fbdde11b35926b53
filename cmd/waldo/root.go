package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Alir3z4/waldo/internal/logger"
	"github.com/Alir3z4/waldo/pkg/config"
	"github.com/Alir3z4/waldo/pkg/subimage"
	"github.com/Alir3z4/waldo/pkg/vision/cv"
)

// displayArg 开启窗口展示的第三个参数
const displayArg = "--display"

// viewerFactory 创建展示窗口
type viewerFactory func() cv.Viewer

// newRootCmd 创建根命令
// 参数按位置解析: 两个图像路径，可选的第三个参数 --display
func newRootCmd(cfg *config.Config, newViewer viewerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "waldo image1 image2 [--display]",
		Short: "Find a cropped image inside its original",
		Long: `waldo locates a cropped image inside the image it was cut from using
normalized cross-correlation template matching. The two images may be given
in any order; the one with the larger height+width is treated as the original.

Pass --display as the third argument to show the match in a window.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.Name(), args, cfg, newViewer)
		},
	}
}

// run 执行一次查找
func run(out io.Writer, prog string, args []string, cfg *config.Config, newViewer viewerFactory) error {
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintf(out, "Usage: %s image1.jpeg image2.jpeg --display[Optional]\n", prog)
		return nil
	}
	canDisplay := len(args) == 3 && args[2] == displayArg

	pair, err := subimage.New(args[0], args[1],
		subimage.WithDisplaySize(cfg.DisplayWidth, cfg.DisplayHeight),
		subimage.WithSpotlightAlpha(cfg.SpotlightAlpha),
	)
	if err != nil {
		var notFound *subimage.FileNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintln(out, notFound.Error())
			return nil
		}
		return err
	}
	defer pair.Close()

	if err := pair.FindMatch(); err != nil {
		return fmt.Errorf("匹配失败: %w", err)
	}
	if err := pair.TellTopLeft(out); err != nil {
		return err
	}

	if !canDisplay {
		return nil
	}

	viewer := newViewer()
	defer func() {
		if err := viewer.Close(); err != nil {
			logger.Warn("关闭窗口失败: %v", err)
		}
	}()
	return pair.Display(viewer, out)
}
