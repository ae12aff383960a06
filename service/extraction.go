package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document/parser"
	"github.com/cloudwego/eino/components/model"

	"policy-portal/logic/extract"
	"policy-portal/types"
)

// ExtractionService 保单 PDF 上传 -> 文本解析 -> LLM 结构化提取。
// 提取结果只用于预填建单表单，置信度低只打标，从不阻止提交。
type ExtractionService struct {
	chatModel model.ToolCallingChatModel
	now       func() time.Time
}

func NewExtractionService(chatModel model.ToolCallingChatModel, now func() time.Time) *ExtractionService {
	if now == nil {
		now = time.Now
	}
	return &ExtractionService{chatModel: chatModel, now: now}
}

// ExtractFromDocument 任何失败都折叠成 Success=false + Message 的结果，
// 前端据此提示"提取失败请手工录入"，不会拿到 500。
func (s *ExtractionService) ExtractFromDocument(ctx context.Context, fileHeader *multipart.FileHeader) types.ExtractResult {
	srcFile, err := fileHeader.Open()
	if err != nil {
		return extractionFailed(fmt.Sprintf("文件读取失败: %v", err))
	}
	defer srcFile.Close()

	// pdf解析器
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return extractionFailed(fmt.Sprintf("解析器初始化失败: %v", err))
	}
	docs, err := p.Parse(ctx, srcFile, parser.WithURI(fileHeader.Filename))
	if err != nil {
		return extractionFailed(fmt.Sprintf("PDF 解析失败: %v", err))
	}

	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(doc.Content)
		sb.WriteString("\n")
	}
	content := strings.TrimSpace(sb.String())
	if content == "" {
		return extractionFailed("文档内容为空，无法提取")
	}

	raw, err := extract.FromText(ctx, s.chatModel, content, s.now())
	if err != nil {
		log.Printf("[Extract] LLM 提取失败 (%s): %v", fileHeader.Filename, err)
		return extractionFailed(fmt.Sprintf("结构化提取失败: %v", err))
	}

	result := extract.Clean(raw)
	if result.LowConfidence {
		result.Message = "提取置信度较低，请人工核对后再提交"
	}
	return result
}

func extractionFailed(msg string) types.ExtractResult {
	return types.ExtractResult{Success: false, Message: msg}
}
