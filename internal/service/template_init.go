package service

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/legaldraft/backend/internal/model"
)

// defaultTemplates 预置文书模板，进程启动时写入一次
func defaultTemplates() []model.DocumentTemplate {
	return []model.DocumentTemplate{
		{
			Type:        "employment",
			Name:        "Employment Contract",
			Description: "Comprehensive employment agreements with benefits, termination clauses, and jurisdiction compliance.",
			Fields: datatypes.NewJSONType([]model.FieldSpec{
				{Key: "employerName", Kind: model.FieldText, Label: "Employer Name", Required: true},
				{Key: "employeeName", Kind: model.FieldText, Label: "Employee Name", Required: true},
				{Key: "jobTitle", Kind: model.FieldText, Label: "Position/Job Title", Required: true},
				{Key: "startDate", Kind: model.FieldDate, Label: "Start Date", Required: true},
				{Key: "salary", Kind: model.FieldText, Label: "Salary/Rate", Required: true},
				{Key: "benefits", Kind: model.FieldTextarea, Label: "Benefits", Required: false},
				{Key: "workSchedule", Kind: model.FieldSelect, Label: "Work Schedule", Required: false,
					Options: []string{"full-time", "part-time", "contract", "temporary"}},
				{Key: "terminationClause", Kind: model.FieldTextarea, Label: "Termination Clause", Required: false},
			}),
			PromptTemplate: "Generate a comprehensive employment contract for {employerName} hiring {employeeName} as {jobTitle}. " +
				"Include salary of {salary}, starting {startDate}. Work schedule: {workSchedule}. Benefits: {benefits}. " +
				"Termination terms: {terminationClause}. Jurisdiction: {jurisdiction}. " +
				"Include standard clauses for confidentiality, termination, and jurisdiction-specific labor law compliance.",
			EstimatedMinutes: 5,
		},
		{
			Type:        "nda",
			Name:        "Non-Disclosure Agreement",
			Description: "Protect confidential information with mutual or one-way non-disclosure agreements.",
			Fields: datatypes.NewJSONType([]model.FieldSpec{
				{Key: "disclosingParty", Kind: model.FieldText, Label: "Disclosing Party", Required: true},
				{Key: "receivingParty", Kind: model.FieldText, Label: "Receiving Party", Required: true},
				{Key: "ndaType", Kind: model.FieldSelect, Label: "NDA Type", Required: true,
					Options: []string{"mutual", "one-way"}},
				{Key: "purpose", Kind: model.FieldTextarea, Label: "Purpose of Disclosure", Required: true},
				{Key: "duration", Kind: model.FieldSelect, Label: "Duration", Required: true,
					Options: []string{"1-year", "2-years", "3-years", "5-years", "indefinite"}},
				{Key: "penalties", Kind: model.FieldTextarea, Label: "Specific Penalties", Required: false},
			}),
			PromptTemplate: "Generate a {ndaType} non-disclosure agreement between {disclosingParty} and {receivingParty}. " +
				"Purpose: {purpose}. Duration: {duration}. Jurisdiction: {jurisdiction}. " +
				"Include standard confidentiality clauses, return of materials, and enforcement provisions. Penalties: {penalties}",
			EstimatedMinutes: 3,
		},
		{
			Type:        "service",
			Name:        "Service Agreement",
			Description: "Professional service contracts for consultants, freelancers, and service providers.",
			Fields: datatypes.NewJSONType([]model.FieldSpec{
				{Key: "serviceProvider", Kind: model.FieldText, Label: "Service Provider", Required: true},
				{Key: "client", Kind: model.FieldText, Label: "Client", Required: true},
				{Key: "serviceDescription", Kind: model.FieldTextarea, Label: "Service Description", Required: true},
				{Key: "fee", Kind: model.FieldText, Label: "Fee", Required: true},
				{Key: "paymentTerms", Kind: model.FieldSelect, Label: "Payment Terms", Required: true,
					Options: []string{"net-15", "net-30", "upfront", "50-50-split"}},
				{Key: "duration", Kind: model.FieldText, Label: "Project Duration", Required: true},
				{Key: "deliverables", Kind: model.FieldTextarea, Label: "Deliverables", Required: true},
			}),
			PromptTemplate: "Generate a service agreement between {serviceProvider} and {client}. " +
				"Services: {serviceDescription}. Fee: {fee} with {paymentTerms} payment terms. Duration: {duration}. " +
				"Deliverables: {deliverables}. Jurisdiction: {jurisdiction}. " +
				"Include liability limitations, intellectual property clauses, and termination provisions.",
			EstimatedMinutes: 4,
		},
	}
}

// InitDefaultData 初始化预置数据：模板、辖区要求、文章
// 各自以计数检查保证幂等，模板在写入前做 token/字段一致性校验，不一致直接失败
func InitDefaultData(db *gorm.DB) error {
	if err := initTemplates(db); err != nil {
		return err
	}
	if err := initJurisdictionRequirements(db); err != nil {
		return err
	}
	return initBlogPosts(db)
}

func initTemplates(db *gorm.DB) error {
	templates := defaultTemplates()
	for i := range templates {
		if err := templates[i].Validate(); err != nil {
			return fmt.Errorf("invalid seed template: %w", err)
		}
	}

	var count int64
	if err := db.Model(&model.DocumentTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range templates {
			if err := tx.Create(&templates[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func initJurisdictionRequirements(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.JurisdictionRequirement{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	requirements := []model.JurisdictionRequirement{
		{
			Jurisdiction: "CA",
			DocumentType: "employment",
			Requirements: datatypes.JSON(`{"notes":["California is an at-will employment state","Non-compete clauses are generally unenforceable under Business and Professions Code 16600","Meal and rest break provisions must be included for non-exempt employees"]}`),
			LastUpdated:  time.Now(),
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range requirements {
			if err := tx.Create(&requirements[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func initBlogPosts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.BlogPost{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := []model.BlogPost{
		{
			Title:         "Employment Contract Essentials: What Every Employer Needs to Know",
			Slug:          "employment-contract-essentials",
			Excerpt:       "Learn the key components of legally compliant employment contracts and avoid common mistakes that could cost your business.",
			Content:       "Full article content about employment contracts...",
			Category:      "Employment Law",
			Tags:          datatypes.NewJSONSlice([]string{"employment", "contracts", "hr", "compliance"}),
			ReadTime:      5,
			PublishedAt:   time.Now(),
			FeaturedImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
		},
		{
			Title:         "LLC vs Corporation: Choosing the Right Business Structure",
			Slug:          "llc-vs-corporation-business-structure",
			Excerpt:       "Compare the pros and cons of different business structures to make the best choice for your startup or existing business.",
			Content:       "Full article content about business structures...",
			Category:      "Business Formation",
			Tags:          datatypes.NewJSONSlice([]string{"llc", "corporation", "business", "legal-structure"}),
			ReadTime:      7,
			PublishedAt:   time.Now(),
			FeaturedImage: "https://images.unsplash.com/photo-1589829545856-d10d557cf95f",
		},
		{
			Title:         "GDPR Compliance for Small Businesses: A Practical Guide",
			Slug:          "gdpr-compliance-small-businesses",
			Excerpt:       "Navigate GDPR requirements and create compliant privacy policies that protect your business and customers.",
			Content:       "Full article content about GDPR compliance...",
			Category:      "Data Privacy",
			Tags:          datatypes.NewJSONSlice([]string{"gdpr", "privacy", "compliance", "data-protection"}),
			ReadTime:      6,
			PublishedAt:   time.Now(),
			FeaturedImage: "https://images.unsplash.com/photo-1497366216548-37526070297c",
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range posts {
			if err := tx.Create(&posts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
