package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"propstrike/internal/server"
)

func main() {
	// 环境变量配置为主，命令行参数可覆盖监听地址与协议
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	address := flag.String("addr", cfg.Addr, "服务器监听地址")
	proto := flag.String("proto", cfg.Proto, "监听协议 (kcp/tcp)")
	flag.Parse()
	cfg.Addr = *address
	cfg.Proto = *proto

	// 创建服务器
	gameServer := server.NewGameServer(cfg)

	// 启动服务器（在新的 goroutine 中）
	go func() {
		if err := gameServer.Start(); err != nil {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	log.Println("========================================")
	log.Println("  Propstrike 靶场服务器")
	log.Println("========================================")
	log.Printf("监听地址: %s (%s)", cfg.Addr, cfg.Proto)
	log.Printf("服务器 TPS: %d", cfg.TPS)
	log.Printf("靶标槽位: %d, 历史深度: %d", cfg.MaxProps, cfg.HistoryDepth)
	log.Printf("最大回溯: %d ms", cfg.MaxLookbackMs)
	log.Println("========================================")
	log.Println("服务器正在运行...")
	log.Println("按 Ctrl+C 停止服务器")

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("\n正在关闭服务器...")
	gameServer.Shutdown()

	log.Println("服务器已关闭，再见！")
}
