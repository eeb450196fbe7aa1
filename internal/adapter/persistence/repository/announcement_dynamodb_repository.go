package repository

import (
	"context"
	"sort"
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAnnouncementsTableName = "announcements"

type announcementItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// AnnouncementDynamoRepository persists Announcement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AnnouncementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAnnouncementRepository = (*AnnouncementDynamoRepository)(nil)

func NewAnnouncementDynamoRepository(ddb *dynamodb.Client) *AnnouncementDynamoRepository {
	return &AnnouncementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ANNOUNCEMENTS_TABLE", defaultAnnouncementsTableName),
	}
}

func (r *AnnouncementDynamoRepository) Create(ctx context.Context, a entities.Announcement) (entities.Announcement, error) {
	it := toAnnouncementItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Announcement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Announcement{}, err
	}
	return a, nil
}

func (r *AnnouncementDynamoRepository) List(ctx context.Context) ([]entities.Announcement, error) {
	var announcements []entities.Announcement

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it announcementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			announcements = append(announcements, fromAnnouncementItem(it))
		}
	}

	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
	return announcements, nil
}

func toAnnouncementItem(a entities.Announcement) announcementItem {
	return announcementItem{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAnnouncementItem(it announcementItem) entities.Announcement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Announcement{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}
