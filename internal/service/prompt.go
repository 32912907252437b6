package service

import (
	"fmt"
	"strings"

	"github.com/legaldraft/backend/internal/model"
)

// closingInstruction 固定的收尾指令
const closingInstruction = "\n\nGenerate a professional, legally formatted document. " +
	"Include proper headers, clauses, and formatting. Return the complete document text."

// buildPrompt 把表单值和辖区代入提示词模板。
// 纯函数：相同输入产生字节一致的输出，无 I/O。
// 模板中每个 {key} 的所有出现都被替换；可选字段缺失时替换为空串，
// 绝不把字面量 token 泄漏进提示词（模板一致性在种子阶段已校验）。
func buildPrompt(valid *validRequest, jurReq *model.JurisdictionRequirement) string {
	prompt := valid.template.PromptTemplate

	for _, field := range valid.template.Fields.Data() {
		prompt = strings.ReplaceAll(prompt, "{"+field.Key+"}", valid.FormData[field.Key])
	}
	prompt = strings.ReplaceAll(prompt, "{"+model.JurisdictionToken+"}", valid.Jurisdiction)

	if jurReq != nil {
		prompt += fmt.Sprintf("\n\nJurisdiction-specific requirements for %s: %s",
			valid.Jurisdiction, string(jurReq.Requirements))
	}

	prompt += closingInstruction
	return prompt
}
