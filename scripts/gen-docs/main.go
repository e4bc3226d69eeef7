package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"ekscleanup/cmd"
)

func main() {
	docsDir := "./docs"

	if err := os.RemoveAll(docsDir); err != nil {
		log.Fatalf("Failed to clean docs directory: %v", err)
	}
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		log.Fatalf("Failed to create docs directory: %v", err)
	}

	// ルートコマンドはdocs/README.mdとして生成
	if err := genRootMarkdown(cmd.RootCmd, filepath.Join(docsDir, "README.md")); err != nil {
		log.Fatalf("Failed to generate root documentation: %v", err)
	}

	fileCount := 1
	for _, group := range cmd.RootCmd.Commands() {
		if !group.IsAvailableCommand() || group.IsAdditionalHelpTopicCommand() {
			continue
		}
		// vpc cleanup のようなサブコマンドは親と同じファイルにまとめる
		filename := filepath.Join(docsDir, group.Name()+".md")
		if err := genGroupMarkdown(group, filename); err != nil {
			log.Printf("Failed to generate documentation for %s: %v", group.Name(), err)
			continue
		}
		fileCount++
	}

	fmt.Printf("✅ Documentation generated in %s (%d files)\n", docsDir, fileCount)
}

// genRootMarkdown はルートコマンドのドキュメントを生成する
// 各グループのファイルへのリンクは README からの相対パスに書き換える
func genRootMarkdown(root *cobra.Command, filename string) error {
	buf := new(bytes.Buffer)
	if err := doc.GenMarkdownCustom(root, buf, func(name string) string {
		// ekscleanup_vpc.md → vpc.md
		base := strings.TrimSuffix(name, ".md")
		parts := strings.Split(base, "_")
		return parts[len(parts)-1] + ".md"
	}); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

// genGroupMarkdown はグループ配下の全コマンドを1つのファイルにまとめて生成する
func genGroupMarkdown(group *cobra.Command, filename string) error {
	commands := []*cobra.Command{group}
	for _, child := range group.Commands() {
		if child.IsAvailableCommand() && !child.IsAdditionalHelpTopicCommand() {
			commands = append(commands, child)
		}
	}

	var content strings.Builder
	fmt.Fprintf(&content, "# %s Commands\n\n", group.Name())
	content.WriteString("## Table of Contents\n\n")
	for _, c := range commands {
		cmdPath := c.CommandPath()
		fmt.Fprintf(&content, "- [%s](#%s)\n", cmdPath, strings.ReplaceAll(cmdPath, " ", "-"))
	}
	content.WriteString("\n---\n\n")

	for _, c := range commands {
		buf := new(bytes.Buffer)
		if err := doc.GenMarkdownCustom(c, buf, anchorLink); err != nil {
			return fmt.Errorf("failed to generate markdown for %s: %w", c.CommandPath(), err)
		}
		content.WriteString(removeSeeAlsoSection(buf.String()))
		content.WriteString("\n---\n\n")
	}

	return os.WriteFile(filename, []byte(content.String()), 0644)
}

// anchorLink は同じファイル内の見出しへのリンクを返す
func anchorLink(name string) string {
	return "#" + strings.ReplaceAll(strings.TrimSuffix(name, ".md"), "_", "-")
}

// removeSeeAlsoSection は1ファイルにまとめたときに重複する SEE ALSO を削除する
func removeSeeAlsoSection(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	inSeeAlso := false

	for _, line := range lines {
		if strings.HasPrefix(line, "### SEE ALSO") {
			inSeeAlso = true
			continue
		}
		if inSeeAlso && (strings.HasPrefix(line, "### ") || strings.HasPrefix(line, "## ")) {
			inSeeAlso = false
		}
		if !inSeeAlso {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
