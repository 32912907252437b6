package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"k8s.io/klog/v2"

	"github.com/legaldraft/backend/config"
)

var (
	// ErrNotConfigured 生成能力未配置（缺少凭证），调用方应返回 503
	ErrNotConfigured = errors.New("generation service is not configured")
	// ErrEmptyResponse 服务返回了空内容
	ErrEmptyResponse = errors.New("generation service returned no usable text")
)

// systemPrompt 固定的 system 角色指令
const systemPrompt = "You are a professional legal document generator. " +
	"Create comprehensive, well-formatted legal documents that comply with state laws " +
	"and industry standards. Use proper legal language and formatting."

// ChatModel 生成所需的最小 Eino 模型接口
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error)
}

// Result 一次生成调用的结果
// Demo 为 true 时内容是演示模式的占位文稿，不是真实生成
type Result struct {
	Content string
	Model   string
	Demo    bool
}

// Client 生成客户端，封装 Eino 的 OpenAI ChatModel
// 未配置凭证时 Client 可正常构造，Generate 返回 ErrNotConfigured
type Client struct {
	chatModel ChatModel
	modelName string
	demoMode  bool
	timeout   time.Duration
}

// NewClient 根据配置创建生成客户端
// 缺少 API Key 不是致命错误，服务照常启动
func NewClient(cfg *config.Config) (*Client, error) {
	c := &Client{
		modelName: cfg.LLM.Model,
		demoMode:  cfg.LLM.DemoMode,
		timeout:   cfg.LLM.Timeout,
	}

	if cfg.LLM.DemoMode {
		klog.V(6).Infof("[llm] 演示模式启用，不调用外部服务")
		return c, nil
	}

	if cfg.LLM.APIKey == "" {
		klog.V(6).Infof("[llm] 未配置 API Key，生成接口将返回不可用")
		return c, nil
	}

	maxTokens := cfg.LLM.MaxTokens
	temperature := cfg.LLM.Temperature
	modelConfig := &openai.ChatModelConfig{
		APIKey: cfg.LLM.APIKey,
		Model:  cfg.LLM.Model,
	}
	if cfg.LLM.APIURL != "" {
		modelConfig.BaseURL = cfg.LLM.APIURL
	}
	if maxTokens > 0 {
		modelConfig.MaxTokens = &maxTokens
	}
	modelConfig.Temperature = &temperature

	chatModel, err := openai.NewChatModel(context.Background(), modelConfig)
	if err != nil {
		klog.Errorf("[llm] 创建 ChatModel 失败: %v", err)
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	c.chatModel = chatModel
	klog.V(6).Infof("[llm] ChatModel 创建成功: model=%s, baseURL=%s", cfg.LLM.Model, cfg.LLM.APIURL)
	return c, nil
}

// Available 生成能力是否可用（真实配置或演示模式）
func (c *Client) Available() bool {
	return c.demoMode || c.chatModel != nil
}

// Generate 发送单次请求：固定 system 指令 + 拼好的提示词
// 超时由 timeout 配置兜底，超时或上游失败时包装错误返回
func (c *Client) Generate(ctx context.Context, prompt string) (*Result, error) {
	if c.demoMode {
		return &Result{Content: demoDocument, Model: "[DEMO]" + c.modelName, Demo: true}, nil
	}
	if c.chatModel == nil {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: prompt},
	}

	klog.V(6).Infof("[llm] Generate 开始: model=%s, promptLength=%d", c.modelName, len(prompt))
	resp, err := c.generate(ctx, messages)
	if err != nil {
		klog.Errorf("[llm] Generate 失败: %v", err)
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return nil, ErrEmptyResponse
	}

	klog.V(6).Infof("[llm] Generate 完成: responseLength=%d", len(resp.Content))
	return &Result{Content: resp.Content, Model: c.modelName}, nil
}

func (c *Client) generate(ctx context.Context, messages []*schema.Message) (*schema.Message, error) {
	return c.chatModel.Generate(ctx, messages)
}

// demoDocument 演示模式的占位文稿，仅用于无凭证环境的界面联调
const demoDocument = `# SAMPLE DOCUMENT (DEMO MODE)

**This document was produced by demo mode. No generation service was called and
the text below is a canned placeholder, not legal content.**

## 1. Parties

This sample agreement is entered into between the parties named in the
submitted form.

## 2. Terms

- This placeholder illustrates the layout of a generated document
- Configure an API key to enable real generation

*Generated for interface preview purposes only.*`
