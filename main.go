package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ByLCY/kanjipress/kanjidata"
	"github.com/ByLCY/kanjipress/pagespec"
	"github.com/ByLCY/kanjipress/report"
	_ "github.com/ByLCY/kanjipress/report/practice"
	_ "github.com/ByLCY/kanjipress/report/summary"
)

func main() {
	name := flag.String("report", "summary", "报表名（"+strings.Join(report.Names(), "、")+"）")
	setupPath := flag.String("setup", "examples/letter.pagespec", "页面设置文件路径")
	dictPath := flag.String("dict", "data/kanjidic2.xml", "KANJIDIC2 字典路径")
	kanjiVGDir := flag.String("kanjivg", "data/kanjivg", "KanjiVG SVG 目录")
	kanjiArg := flag.String("kanji", "", "要生成的字，直接连写")
	output := flag.String("out", "", "覆盖设置文件里的输出路径")
	dataJSON := flag.String("data", "", "注入文本模板的 JSON 数据")
	flag.Parse()

	if *kanjiArg == "" {
		log.Fatalf("缺少 -kanji 参数")
	}

	var data map[string]any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	if err := run(*name, *setupPath, *dictPath, *kanjiVGDir, *kanjiArg, *output, data); err != nil {
		log.Fatalf("生成报表失败: %v", err)
	}
}

// run 串联页面设置解析、数据加载与分页渲染。
func run(name, setupPath, dictPath, kanjiVGDir, kanjiArg, output string, data map[string]any) error {
	file, err := os.Open(setupPath)
	if err != nil {
		return fmt.Errorf("无法打开页面设置 %s: %w", setupPath, err)
	}
	setup, err := pagespec.Parse(setupPath, file)
	file.Close()
	if err != nil {
		return err
	}
	if output != "" {
		setup.Output = output
	}

	dictFile, err := os.Open(dictPath)
	if err != nil {
		return fmt.Errorf("无法打开字典 %s: %w", dictPath, err)
	}
	dict, err := kanjidata.LoadDictionary(dictFile)
	dictFile.Close()
	if err != nil {
		return err
	}

	rep, err := report.New(name, report.Options{
		Dict:    dict,
		Strokes: kanjidata.NewCache(kanjiVGDir),
		Kanji:   []rune(kanjiArg),
		Data:    data,
	})
	if err != nil {
		return err
	}

	if err := report.Run(rep, setup); err != nil {
		return err
	}
	fmt.Printf("已生成 PDF：%s\n", setup.Output)
	return nil
}
