package repository

import (
	"context"
	"errors"
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAgreementsTableName = "agreements"
	defaultUsersTableName      = "users"
)

type agreementItem struct {
	UserEmail   string  `dynamodbav:"user_email"`
	ID          string  `dynamodbav:"id"`
	UserName    string  `dynamodbav:"user_name"`
	UserImage   string  `dynamodbav:"user_image,omitempty"`
	FloorNo     string  `dynamodbav:"floor_no"`
	BlockName   string  `dynamodbav:"block_name"`
	ApartmentNo string  `dynamodbav:"apartment_no"`
	Rent        float64 `dynamodbav:"rent"`
	Status      string  `dynamodbav:"status"`
	Role        string  `dynamodbav:"role"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// AgreementDynamoRepository persists Agreement entities in DynamoDB.
//
// Table requirements:
//   - agreements: PK user_email (string)
//   - users: PK email (string) — the denormalized role directory
//
// The applicant email as PK guarantees at most one live agreement per email;
// the conditional put below is what keeps the one-pending rule safe under
// concurrent applications. Role-changing writes update both tables inside one
// TransactWriteItems, so the directory role cannot lag the agreement.

type AgreementDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	usersTable string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb *dynamodb.Client) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("AGREEMENTS_TABLE", defaultAgreementsTableName),
		usersTable: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	it := toAgreementItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Agreement{}, err
	}

	// Either no record exists for this email, or the existing one is already
	// decided. A concurrent duplicate application loses the conditional check.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#user_email) OR #status <> :pending"),
		ExpressionAttributeNames: map[string]string{
			"#user_email": "user_email",
			"#status":     "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.AgreementStatusPending)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Agreement{}, nil
		}
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agreement{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func (r *AgreementDynamoRepository) List(ctx context.Context) ([]entities.Agreement, error) {
	var agreements []entities.Agreement

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it agreementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			agreements = append(agreements, fromAgreementItem(it))
		}
	}
	return agreements, nil
}

// AcceptPending flips the pending agreement to checked/member and syncs the
// directory role in one transaction. Of concurrent Accept/Reject calls against
// the same pending record, at most one passes the condition; losers report
// zero counts.
func (r *AgreementDynamoRepository) AcceptPending(ctx context.Context, email string) (int, int, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"user_email": &types.AttributeValueMemberS{Value: email},
					},
					ConditionExpression: aws.String("#status = :pending"),
					UpdateExpression:    aws.String("SET #status = :checked, #role = :member, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#status":     "status",
						"#role":       "role",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":    &types.AttributeValueMemberS{Value: string(entities.AgreementStatusPending)},
						":checked":    &types.AttributeValueMemberS{Value: string(entities.AgreementStatusChecked)},
						":member":     &types.AttributeValueMemberS{Value: string(entities.UserRoleMember)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			r.directoryRoleWrite(email, entities.UserRoleMember),
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return 1, 1, nil
}

func (r *AgreementDynamoRepository) RejectPending(ctx context.Context, email string) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_email": &types.AttributeValueMemberS{Value: email},
		},
		ConditionExpression: aws.String("#status = :pending"),
		UpdateExpression:    aws.String("SET #status = :checked, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.AgreementStatusPending)},
			":checked":    &types.AttributeValueMemberS{Value: string(entities.AgreementStatusChecked)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

// DemoteMember reverts an accepted member to a plain user on the agreement and
// in the directory, in one transaction.
func (r *AgreementDynamoRepository) DemoteMember(ctx context.Context, email string) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"user_email": &types.AttributeValueMemberS{Value: email},
					},
					ConditionExpression: aws.String("#role = :member"),
					UpdateExpression:    aws.String("SET #role = :user, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#role":       "role",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":member":     &types.AttributeValueMemberS{Value: string(entities.UserRoleMember)},
						":user":       &types.AttributeValueMemberS{Value: string(entities.UserRoleUser)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			r.directoryRoleWrite(email, entities.UserRoleUser),
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

// directoryRoleWrite sets the cached role in the users table. Unconditional:
// a missing directory entry is (re)created rather than failing the transaction.
func (r *AgreementDynamoRepository) directoryRoleWrite(email string, role entities.UserRole) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.usersTable),
			Key: map[string]types.AttributeValue{
				"email": &types.AttributeValueMemberS{Value: email},
			},
			UpdateExpression: aws.String("SET #role = :role"),
			ExpressionAttributeNames: map[string]string{
				"#role": "role",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":role": &types.AttributeValueMemberS{Value: string(role)},
			},
		},
	}
}

// isConditionalCancellation reports whether a transaction was cancelled because
// a condition failed, as opposed to a capacity or conflict error.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toAgreementItem(a entities.Agreement) agreementItem {
	return agreementItem{
		UserEmail:   a.UserEmail,
		ID:          a.ID,
		UserName:    a.UserName,
		UserImage:   a.UserImage,
		FloorNo:     a.FloorNo,
		BlockName:   a.BlockName,
		ApartmentNo: a.ApartmentNo,
		Rent:        a.Rent,
		Status:      string(a.Status),
		Role:        string(a.Role),
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAgreementItem(it agreementItem) entities.Agreement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Agreement{
		UserEmail:   it.UserEmail,
		ID:          it.ID,
		UserName:    it.UserName,
		UserImage:   it.UserImage,
		FloorNo:     it.FloorNo,
		BlockName:   it.BlockName,
		ApartmentNo: it.ApartmentNo,
		Rent:        it.Rent,
		Status:      entities.AgreementStatus(it.Status),
		Role:        entities.UserRole(it.Role),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
