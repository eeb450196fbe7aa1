package repository

import (
	"context"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultApartmentsTableName = "apartments"

type apartmentItem struct {
	ID          string  `dynamodbav:"id"`
	FloorNo     string  `dynamodbav:"floor_no"`
	BlockName   string  `dynamodbav:"block_name"`
	ApartmentNo string  `dynamodbav:"apartment_no"`
	Rent        float64 `dynamodbav:"rent"`
	Image       string  `dynamodbav:"image,omitempty"`
}

// ApartmentDynamoRepository reads the apartment listings table.
//
// Table requirements:
//   - PK: id (string)
//
// This core never writes apartments; listings are seeded out of band.

type ApartmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApartmentRepository = (*ApartmentDynamoRepository)(nil)

func NewApartmentDynamoRepository(ddb *dynamodb.Client) *ApartmentDynamoRepository {
	return &ApartmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APARTMENTS_TABLE", defaultApartmentsTableName),
	}
}

func (r *ApartmentDynamoRepository) ListByRent(ctx context.Context, minRent, maxRent float64) ([]entities.Apartment, error) {
	var apartments []entities.Apartment

	filter, values := rentFilter(minRent, maxRent)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String(filter),
		ExpressionAttributeNames: map[string]string{
			"#rent": "rent",
		},
		ExpressionAttributeValues: values,
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it apartmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			apartments = append(apartments, fromApartmentItem(it))
		}
	}
	return apartments, nil
}

// rentFilter builds the scan filter for a rent range. DynamoDB numbers cap at
// 38 digits of precision and ~1E+126 magnitude, so an unbounded range (maxRent
// of zero or less) must omit the upper bound instead of sending a huge
// sentinel, which DynamoDB rejects with a ValidationException.
func rentFilter(minRent, maxRent float64) (string, map[string]types.AttributeValue) {
	values := map[string]types.AttributeValue{
		":min": &types.AttributeValueMemberN{Value: floatToString(minRent)},
	}
	if maxRent <= 0 {
		return "#rent >= :min", values
	}
	values[":max"] = &types.AttributeValueMemberN{Value: floatToString(maxRent)}
	return "#rent BETWEEN :min AND :max", values
}

func (r *ApartmentDynamoRepository) Count(ctx context.Context) (int64, error) {
	var total int64

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
	}
	return total, nil
}

func fromApartmentItem(it apartmentItem) entities.Apartment {
	return entities.Apartment{
		ID:          it.ID,
		FloorNo:     it.FloorNo,
		BlockName:   it.BlockName,
		ApartmentNo: it.ApartmentNo,
		Rent:        it.Rent,
		Image:       it.Image,
	}
}
