package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	cfgpkg "slicut/internal/config"
	"slicut/internal/diag"
	"slicut/internal/input"
	"slicut/internal/slice"
)

var sliceRun = slice.Run

// 单命令 CLI。
// 位置参数：range（"start:end"，必填）与可选 input（文件路径或 "-" 表示 STDIN）。
// 旗标（最小集）：--config, -c/--byte, --delim, --log-level
// 退出码：0 成功（含合法的空输出）；3 配置/范围解析失败；1 运行期失败。
func main() {
	os.Exit(run())
}

func run() int {
	corrID := genCorrID()
	logger := diag.NewLogger(corrID, "error")

	// flags
	var (
		flagConfig   string
		flagByte     bool
		flagDelim    string
		flagLogLevel string
	)
	flag.StringVar(&flagConfig, "config", "", "配置文件路径（JSON）；缺省仅用 ENV 与旗标")
	flag.BoolVar(&flagByte, "byte", false, "按字节计数（默认按行）")
	flag.BoolVar(&flagByte, "c", false, "--byte 的简写")
	flag.StringVar(&flagDelim, "delim", "", "行分隔符（恰 1 字节；覆盖配置，默认换行）")
	flag.StringVar(&flagLogLevel, "log-level", "", "日志级别 debug|info|warn|error（覆盖配置）")
	flag.Parse()

	// 位置参数：range [input]
	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		fprintf(os.Stderr, "用法: slicut [flags] start:end [input|-]\n")
		flag.PrintDefaults()
		return 3
	}

	// JSON 配置（文件或 ENV: SLICUT_CONFIG_JSON / SLICUT_CONFIG_FILE）
	var cfgJSON []byte
	if s := os.Getenv("SLICUT_CONFIG_JSON"); s != "" {
		cfgJSON = []byte(s)
	}
	if flagConfig == "" {
		flagConfig = os.Getenv("SLICUT_CONFIG_FILE")
	}

	cfg := cfgpkg.Defaults()
	if flagConfig != "" || len(cfgJSON) > 0 {
		base, err := cfgpkg.LoadJSON(flagConfig, cfgJSON)
		if err != nil {
			fprintf(os.Stderr, "配置解析失败: %v\n", err)
			logger.Error("config", string(diag.Classify(err)), "load failed", "")
			return 3
		}
		cfg = cfgpkg.Merge(cfg, base)
	}

	// ENV 覆盖（最小集合）
	overEnv, err := cfgpkg.EnvOverlay(os.Environ())
	if err != nil {
		fprintf(os.Stderr, "环境变量解析失败: %v\n", err)
		logger.Error("config", string(diag.Classify(err)), "env overlay failed", "")
		return 3
	}
	cfg = cfgpkg.Merge(cfg, overEnv)

	// CLI 覆盖
	var overCLI cfgpkg.Config
	overCLI.Range = args[0]
	if len(args) == 2 {
		overCLI.Input = args[1]
	}
	if flagByte {
		overCLI.Mode = "byte"
	}
	if flagDelim != "" {
		overCLI.Delimiter = flagDelim
	}
	if strings.TrimSpace(flagLogLevel) != "" {
		overCLI.Logging.Level = strings.TrimSpace(flagLogLevel)
	}
	cfg = cfgpkg.Merge(cfg, overCLI)

	// 基本校验
	if err := cfgpkg.Validate(cfg); err != nil {
		fprintf(os.Stderr, "配置校验失败: %v\n", err)
		logger.Error("config", string(diag.Classify(err)), "validate failed", "")
		return 3
	}

	// 使用最终配置中的日志级别重建 logger
	logger = diag.NewLogger(corrID, cfg.Logging.Level)
	logger.DebugKV("config", "effective", map[string]string{
		"range":    cfg.Range,
		"input":    cfg.Input,
		"mode":     cfg.Mode,
		"buf_size": fmt.Sprintf("%d", cfg.BufSize),
	})

	// 装配：范围解析 + 计数策略
	set, err := cfgpkg.Assemble(cfg)
	if err != nil {
		fprintf(os.Stderr, "范围无效: %v\n", err)
		logger.Error("config", string(diag.Classify(err)), "assemble failed", "")
		return 3
	}

	// 打开输入（目录在任何读取前拒绝）
	in, err := input.Open(cfg.Input)
	if err != nil {
		fprintf(os.Stderr, "打开输入失败: %v\n", err)
		logger.Error("input", string(diag.Classify(err)), "open failed", cfg.Input)
		return 1
	}
	defer func() { _ = in.Close() }()

	// 执行切片（输出恒为 STDOUT；已写出字节不回滚）
	if err := sliceRun(context.Background(), in, os.Stdout, set, logger); err != nil {
		fprintf(os.Stderr, "运行失败: %v\n", err)
		return 1
	}
	return 0
}

func fprintf(w *os.File, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

func genCorrID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}
