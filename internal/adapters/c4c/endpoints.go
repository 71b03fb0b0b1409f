package c4c

import (
	"context"

	"c4ctexts/internal/core/odata"
)

// ServiceRoot is the tenant-relative path of the OData service
const ServiceRoot = "/sap/c4c/odata/v1/c4codataapi"

// Collections and navigation properties read by this service
const (
	ServiceRequests    = "ServiceRequestCollection"
	ServiceRequestText = "ServiceRequestTextCollection"
	References         = "ServiceRequestBusinessTransactionDocumentReferenceCollection"
	Activities         = "ActivityCollection"
	EMails             = "EMailCollection"
)

// Expansions
const (
	ExpandActivityText = "ActivityText"
	ExpandEMailNotes   = "EMailNotes"
)

// Field names and codes used in filters
const (
	FieldID                 = "ID"
	FieldObjectID           = "ObjectID"
	FieldParentObjectID     = "ParentObjectID"
	FieldTypeCode           = "TypeCode"
	FieldProcessingTypeCode = "ProcessingTypeCode"

	TypeCodeActivity       = "39"
	ProcessingTypeInternal = "0011"
)

// Path joins segments under ServiceRoot
func Path(segments ...string) string {
	p := ServiceRoot
	for _, s := range segments {
		p += "/" + s
	}
	return p
}

// Query reads collection on tenant with q
func (c *Client) Query(ctx context.Context, tenant, auth, collection string, q odata.Query) (odata.Collection, error) {
	return c.get(ctx, tenant, auth, collection, Path(collection), q)
}

// Navigate reads nav of the entity collection('key')
func (c *Client) Navigate(ctx context.Context, tenant, auth, collection, key, nav string) (odata.Collection, error) {
	return c.get(ctx, tenant, auth, nav, Path(odata.Key(collection, key), nav), odata.Query{})
}

func (c *Client) get(ctx context.Context, tenant, auth, label, path string, q odata.Query) (odata.Collection, error) {
	u, err := odata.BuildURL(tenant, path, q.Params())
	if err != nil {
		return odata.Collection{}, err
	}
	return c.FetchJSON(ctx, Request{Collection: label, URL: u, Auth: auth})
}
