package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warning": WARN,
		"WARN":    WARN,
		"error":   ERROR,
		"unknown": INFO,
		"":        INFO,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, 期望 %s", in, got, want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if DEBUG.String() != "DEBUG" || ERROR.String() != "ERROR" {
		t.Error("级别名称不正确")
	}
	if Level(99).String() != "UNKNOWN" {
		t.Errorf("未知级别应为 UNKNOWN, 实际为 %s", Level(99).String())
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(WARN)

	l.Info("不应输出 %d", 1)
	l.Warn("应该输出 %d", 2)

	out := buf.String()
	if strings.Contains(out, "不应输出") {
		t.Errorf("INFO 日志不应在 WARN 级别输出: %q", out)
	}
	if !strings.Contains(out, "应该输出 2") {
		t.Errorf("WARN 日志应输出: %q", out)
	}
	if !strings.Contains(out, " | WARN | ") {
		t.Errorf("日志格式应包含级别分隔符: %q", out)
	}
}

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetEnabled(false)

	l.Error("禁用后不输出")
	if buf.Len() != 0 {
		t.Errorf("禁用后不应有输出: %q", buf.String())
	}
}

func TestLoggerConsoleOff(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetConsole(false)

	l.Error("控制台关闭")
	if buf.Len() != 0 {
		t.Errorf("关闭控制台后不应有输出: %q", buf.String())
	}
}

func TestLogEvent(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	l.LogEvent("tpl", true, 12.3, "ok detail")
	l.LogEvent("tpl", false, 1, "ng detail")

	out := buf.String()
	if !strings.Contains(out, "tpl  | OK |   12.3ms | ok detail") {
		t.Errorf("成功事件格式不正确: %q", out)
	}
	if !strings.Contains(out, "ERROR") || !strings.Contains(out, "| NG |") {
		t.Errorf("失败事件应以 ERROR 输出: %q", out)
	}
}

func TestLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waldo.log")
	l := New()
	l.SetConsole(false)

	if err := l.SetFile(true, path); err != nil {
		t.Fatalf("设置日志文件失败: %v", err)
	}
	l.Info("写入文件 %s", "hello")
	if err := l.Close(); err != nil {
		t.Fatalf("关闭 logger 失败: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	if !strings.Contains(string(data), `"message":"写入文件 hello"`) {
		t.Errorf("日志文件内容不正确: %s", data)
	}
}

func TestSetFileBadPath(t *testing.T) {
	l := New()
	err := l.SetFile(true, filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Error("不存在的目录应返回错误")
	}
}
