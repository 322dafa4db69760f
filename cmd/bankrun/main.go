package main

import (
	"fmt"
	"os"
)

func main() {
	// 添加 panic recovery，确保任何 panic 都能被捕获
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n❌ [PANIC] 程序发生严重错误: %v\n", r)
			os.Exit(1)
		}
	}()

	Execute()
}
