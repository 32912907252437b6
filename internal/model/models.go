package model

import (
	"time"

	"gorm.io/datatypes"
)

// Document 一次成功生成调用产生的文书记录
// 内容创建后不可变，唯一的写操作是下载计数自增
type Document struct {
	ID            uint                               `json:"id" gorm:"primaryKey"`
	Type          string                             `json:"type" gorm:"size:50;index;not null"` // 引用 DocumentTemplate.Type，仅约定不做外键
	Title         string                             `json:"title" gorm:"size:255;not null"`
	Content       string                             `json:"content" gorm:"type:text"`
	FormData      datatypes.JSONType[map[string]string] `json:"form_data"`
	Jurisdiction  string                             `json:"jurisdiction" gorm:"size:2"`
	CreatedAt     time.Time                          `json:"created_at"`
	DownloadCount int                                `json:"download_count" gorm:"default:0"`
}

// JurisdictionRequirement 某司法辖区对某类文书的附加条款要求
// 组合键 (jurisdiction, document_type)，缺失不是错误
type JurisdictionRequirement struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Jurisdiction string         `json:"jurisdiction" gorm:"size:2;not null;uniqueIndex:idx_jurisdiction_doc_type"`
	DocumentType string         `json:"document_type" gorm:"size:50;not null;uniqueIndex:idx_jurisdiction_doc_type"`
	Requirements datatypes.JSON `json:"requirements"`
	LastUpdated  time.Time      `json:"last_updated" gorm:"autoUpdateTime"`
}

// BlogPost 编辑部文章，浏览计数与文书下载计数同构
type BlogPost struct {
	ID            uint                         `json:"id" gorm:"primaryKey"`
	Title         string                       `json:"title" gorm:"size:255;not null"`
	Slug          string                       `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Excerpt       string                       `json:"excerpt" gorm:"size:1000"`
	Content       string                       `json:"content" gorm:"type:text"`
	Category      string                       `json:"category" gorm:"size:100;index"`
	Tags          datatypes.JSONSlice[string]  `json:"tags"`
	ReadTime      int                          `json:"read_time"`
	PublishedAt   time.Time                    `json:"published_at"`
	Views         int                          `json:"views" gorm:"default:0"`
	FeaturedImage string                       `json:"featured_image" gorm:"size:500"`
}
