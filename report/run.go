package report

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ByLCY/kanjipress/frame"
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/pagespec"
	"github.com/ByLCY/kanjipress/surface"
	"github.com/ByLCY/kanjipress/surface/pdf"
)

// Run 打开输出文件、构建内容树并把整份报表渲染成 PDF。
func Run(rep Report, setup *pagespec.Setup) error {
	if setup.Output == "" {
		return fmt.Errorf("report: 页面设置里没有 output")
	}
	size, err := setup.Page.Size()
	if err != nil {
		return err
	}

	out, err := os.Create(setup.Output)
	if err != nil {
		return fmt.Errorf("report: 创建输出文件失败: %w", err)
	}
	defer out.Close()

	title := setup.Title
	if title == "" {
		title = rep.Title()
	}
	surf := pdf.New(out, size, pdf.Options{
		Fonts:    setup.Fonts,
		Fallback: setup.Fallback,
		Meta: pdf.Meta{
			Title:   title,
			Author:  setup.Author,
			Creator: "kanjipress",
		},
	})

	root, err := rep.BuildRoot(setup, surf)
	if err != nil {
		return err
	}
	pages, err := Paginate(root, surf)
	if err != nil {
		return err
	}
	if err := surf.Close(); err != nil {
		return err
	}
	if setup.Debug != "" {
		if err := frame.WriteDebugJSON(root, setup.Debug); err != nil {
			return err
		}
		log.Printf("report: 布局快照已写入 %s", setup.Debug)
	}
	log.Printf("report: %s：%d 页已写入 %s", rep.Title(), pages, setup.Output)
	return nil
}

// Paginate 驱动分页循环，返回产出的页数。
//
// 循环有两个出口：BeginPage 报告本页没有内容，或一页画完后状态里
// 不再有 have_more_data。两个条件都要保留：前者挡住空页，后者在
// 内容恰好排尽时立即收尾。
func Paginate(root frame.Frame, surf surface.Surface) (int, error) {
	pages := 0
	for page := 1; root.BeginPage(page); page++ {
		ext := root.Measure(geom.ExtentFit)
		if _, err := root.DoLayout(ext); err != nil {
			var overflow *frame.OverflowError
			if !errors.As(err, &overflow) {
				return pages, fmt.Errorf("report: 第 %d 页布局失败: %w", page, err)
			}
			// 溢出在 report 策略下不终止分页，但要留下痕迹
			log.Printf("report: 第 %d 页内容溢出: %v", page, overflow)
		}
		if err := root.Draw(surf, geom.R(geom.PosZero, ext)); err != nil {
			// 单个帧画不出来不拖垮整页，页面其余内容已经渲染
			log.Printf("report: 第 %d 页部分内容绘制失败: %v", page, err)
		}
		if err := surf.ShowPage(); err != nil {
			return pages, fmt.Errorf("report: 第 %d 页提交失败: %w", page, err)
		}
		pages++
		if !root.State().Has(frame.StateHaveMoreData) {
			break
		}
	}
	return pages, nil
}
