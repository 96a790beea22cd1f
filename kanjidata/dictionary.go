// Package kanjidata 加载报表需要的外部汉字数据：KANJIDIC2 字典与
// KanjiVG 笔顺图，并提供显式的查询缓存。
package kanjidata

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Character 是一个汉字的字典条目。
type Character struct {
	Literal     string
	Meanings    []string
	OnReadings  []string
	KunReadings []string
	Grade       int
	StrokeCount int
	Freq        int
	JLPT        int
}

// Dictionary 是按字面查询的 KANJIDIC2 字典。
type Dictionary struct {
	byLiteral map[string]*Character
}

// KANJIDIC2 的 XML 映射，只取我们用到的字段。
type kanjidic struct {
	Characters []struct {
		Literal string `xml:"literal"`
		Misc    struct {
			Grade       int   `xml:"grade"`
			StrokeCount []int `xml:"stroke_count"`
			Freq        int   `xml:"freq"`
			JLPT        int   `xml:"jlpt"`
		} `xml:"misc"`
		ReadingMeaning struct {
			Groups []struct {
				Readings []struct {
					Type  string `xml:"r_type,attr"`
					Value string `xml:",chardata"`
				} `xml:"reading"`
				Meanings []struct {
					Lang  string `xml:"m_lang,attr"`
					Value string `xml:",chardata"`
				} `xml:"meaning"`
			} `xml:"rmgroup"`
		} `xml:"reading_meaning"`
	} `xml:"character"`
}

// LoadDictionary 解析 KANJIDIC2 XML。
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var doc kanjidic
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("kanjidata: 解析字典失败: %w", err)
	}
	d := &Dictionary{byLiteral: make(map[string]*Character, len(doc.Characters))}
	for _, c := range doc.Characters {
		if c.Literal == "" {
			continue
		}
		entry := &Character{
			Literal: c.Literal,
			Grade:   c.Misc.Grade,
			Freq:    c.Misc.Freq,
			JLPT:    c.Misc.JLPT,
		}
		// KANJIDIC2 可能给出多个笔画数，第一个是标准值
		if len(c.Misc.StrokeCount) > 0 {
			entry.StrokeCount = c.Misc.StrokeCount[0]
		}
		for _, g := range c.ReadingMeaning.Groups {
			for _, reading := range g.Readings {
				switch reading.Type {
				case "ja_on":
					entry.OnReadings = append(entry.OnReadings, reading.Value)
				case "ja_kun":
					entry.KunReadings = append(entry.KunReadings, reading.Value)
				}
			}
			for _, m := range g.Meanings {
				// 无语言标记的含义是英文释义
				if m.Lang == "" {
					entry.Meanings = append(entry.Meanings, m.Value)
				}
			}
		}
		d.byLiteral[entry.Literal] = entry
	}
	return d, nil
}

// Lookup 按字面查条目。
func (d *Dictionary) Lookup(literal string) (*Character, bool) {
	c, ok := d.byLiteral[literal]
	return c, ok
}

// Len 返回条目数。
func (d *Dictionary) Len() int { return len(d.byLiteral) }
