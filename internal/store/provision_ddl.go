package store

// Table names of the data store
const (
	TableContract                    = "contract"
	TableContractToken               = "contract_token"
	TableTokenHolder                 = "token_holder"
	TableMetadata                    = "metadata"
	TableMetadataImage               = "metadata_image"
	TableMetadataLink                = "metadata_link"
	TableMetadataTag                 = "metadata_tag"
	TableMetadataAsset               = "metadata_asset"
	TableDataChanged                 = "erc725y_data_changed"
	TableTransaction                 = "transaction"
	TableTransactionInput            = "transaction_input"
	TableTransactionParameter        = "transaction_parameter"
	TableWrappedTransaction          = "wrapped_transaction"
	TableWrappedTransactionInput     = "wrapped_transaction_input"
	TableWrappedTransactionParameter = "wrapped_transaction_parameter"
	TableEvent                       = "event"
	TableEventParameter              = "event_parameter"
)

// Table names of the structure store
const (
	TableERC725YSchema     = "erc725y_schema"
	TableContractInterface = "contract_interface"
	TableMethodInterface   = "method_interface"
	TableMethodParameter   = "method_parameter"
	TableConfig            = "config"
)

// Enum types and named indexes
const (
	typeContractType = "contract_type"
	typeMethodType   = "method_type"

	indexTokenHolderUnique        = "token_holder_unique"
	indexTokenHolderUniqueNoToken = "token_holder_unique_no_token"
	indexMetadataUnique           = "metadata_unique"
	indexMetadataUniqueNoToken    = "metadata_unique_no_token"
)

type ddlStatement struct {
	sql string
	// tolerateExisting skips duplicate_object errors (CREATE TYPE and CREATE TRIGGER have no IF NOT EXISTS)
	tolerateExisting bool
}

type schemaDefinition struct {
	tables     []string
	types      []string
	indexes    []string
	statements []ddlStatement
	seed       []string
}

const createContractType = `CREATE TYPE contract_type AS ENUM ('profile', 'asset', 'collection')`

var dataSchema = schemaDefinition{
	tables: []string{
		TableContract,
		TableContractToken,
		TableTokenHolder,
		TableMetadata,
		TableMetadataImage,
		TableMetadataLink,
		TableMetadataTag,
		TableMetadataAsset,
		TableDataChanged,
		TableTransaction,
		TableTransactionInput,
		TableTransactionParameter,
		TableWrappedTransaction,
		TableWrappedTransactionInput,
		TableWrappedTransactionParameter,
		TableEvent,
		TableEventParameter,
	},
	types: []string{typeContractType},
	indexes: []string{
		indexTokenHolderUnique,
		indexTokenHolderUniqueNoToken,
		indexMetadataUnique,
		indexMetadataUniqueNoToken,
	},
	statements: []ddlStatement{
		{sql: createContractType, tolerateExisting: true},
		{sql: `CREATE TABLE IF NOT EXISTS contract (
  "address" CHAR(42) NOT NULL,
  "interfaceCode" VARCHAR(20),
  "interfaceVersion" VARCHAR(20),
  "type" contract_type,
  PRIMARY KEY ("address")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS contract_token (
  "id" CHAR(66) NOT NULL,
  "address" CHAR(42) NOT NULL,
  "index" INTEGER NOT NULL,
  "decodedTokenId" VARCHAR(66),
  "tokenId" CHAR(66) NOT NULL,
  "interfaceCode" VARCHAR(20) NOT NULL,
  "latestKnownOwner" CHAR(42),
  PRIMARY KEY ("id"),
  UNIQUE ("address", "tokenId"),
  FOREIGN KEY ("address") REFERENCES contract("address") ON DELETE CASCADE
)`},
		{sql: `CREATE SEQUENCE IF NOT EXISTS contract_token_index_seq`},
		// The MAX based index is computed inside the inserting transaction. Concurrent inserts for
		// the same address can still compute the same value, so writers of one address must be serialized.
		{sql: `CREATE OR REPLACE FUNCTION update_contract_token_index()
RETURNS TRIGGER AS $$
BEGIN
  SELECT COALESCE(MAX(index), 0) + 1
  INTO NEW.index
  FROM contract_token
  WHERE address = NEW.address;

  RETURN NEW;
END;
$$ LANGUAGE plpgsql`},
		{sql: `CREATE TRIGGER contract_token_before_insert
  BEFORE INSERT ON contract_token
  FOR EACH ROW
  EXECUTE FUNCTION update_contract_token_index()`, tolerateExisting: true},
		{sql: `CREATE TABLE IF NOT EXISTS token_holder (
  "holderAddress" CHAR(42) NOT NULL,
  "contractAddress" CHAR(42) NOT NULL,
  "tokenId" CHAR(66),
  "balanceInWei" VARCHAR(78) NOT NULL,
  "balanceInEth" INTEGER NOT NULL,
  "holderSinceBlock" INTEGER NOT NULL,
  FOREIGN KEY ("contractAddress") REFERENCES contract("address") ON DELETE CASCADE,
  FOREIGN KEY ("contractAddress", "tokenId") REFERENCES contract_token("address", "tokenId") ON DELETE CASCADE
)`},
		{sql: `CREATE UNIQUE INDEX IF NOT EXISTS token_holder_unique
  ON token_holder ("holderAddress", "contractAddress", "tokenId")
  WHERE "tokenId" IS NOT NULL`},
		{sql: `CREATE UNIQUE INDEX IF NOT EXISTS token_holder_unique_no_token
  ON token_holder ("holderAddress", "contractAddress")
  WHERE "tokenId" IS NULL`},
		{sql: `CREATE TABLE IF NOT EXISTS metadata (
  "id" SERIAL PRIMARY KEY,
  "address" CHAR(42) NOT NULL,
  "tokenId" CHAR(66),
  "name" VARCHAR(256),
  "symbol" VARCHAR(50),
  "description" VARCHAR(4096),
  "isNFT" BOOLEAN,
  FOREIGN KEY ("address") REFERENCES contract("address") ON DELETE CASCADE,
  FOREIGN KEY ("address", "tokenId") REFERENCES contract_token("address", "tokenId") ON DELETE CASCADE
)`},
		{sql: `CREATE UNIQUE INDEX IF NOT EXISTS metadata_unique
  ON metadata ("address", "tokenId")
  WHERE "tokenId" IS NOT NULL`},
		{sql: `CREATE UNIQUE INDEX IF NOT EXISTS metadata_unique_no_token
  ON metadata ("address")
  WHERE "tokenId" IS NULL`},
		{sql: `CREATE TABLE IF NOT EXISTS metadata_image (
  "metadataId" INTEGER NOT NULL,
  "url" VARCHAR(2048) NOT NULL,
  "width" SMALLINT NOT NULL,
  "height" SMALLINT NOT NULL,
  "type" VARCHAR(40),
  "hash" CHAR(66) NOT NULL,
  FOREIGN KEY ("metadataId") REFERENCES metadata("id") ON DELETE CASCADE,
  UNIQUE ("metadataId", "url")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS metadata_link (
  "metadataId" INTEGER NOT NULL,
  "title" VARCHAR(64) NOT NULL,
  "url" VARCHAR(2048) NOT NULL,
  FOREIGN KEY ("metadataId") REFERENCES metadata("id") ON DELETE CASCADE,
  UNIQUE ("metadataId", "url")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS metadata_tag (
  "metadataId" INTEGER NOT NULL,
  "title" VARCHAR(40) NOT NULL,
  FOREIGN KEY ("metadataId") REFERENCES metadata("id") ON DELETE CASCADE,
  UNIQUE ("metadataId", "title")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS metadata_asset (
  "metadataId" INTEGER NOT NULL,
  "url" VARCHAR(2048) NOT NULL,
  "fileType" VARCHAR(32) NOT NULL,
  "hash" CHAR(66) NOT NULL,
  FOREIGN KEY ("metadataId") REFERENCES metadata("id") ON DELETE CASCADE,
  UNIQUE ("metadataId", "url")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS erc725y_data_changed (
  "address" CHAR(42) NOT NULL,
  "key" CHAR(66) NOT NULL,
  "value" VARCHAR(2048) NOT NULL,
  "decodedValue" VARCHAR(2048),
  "blockNumber" INTEGER NOT NULL,
  UNIQUE ("address", "key", "blockNumber")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS transaction (
  "hash" CHAR(66) NOT NULL,
  "nonce" INTEGER NOT NULL,
  "blockHash" CHAR(66) NOT NULL,
  "blockNumber" INTEGER NOT NULL,
  "date" TIMESTAMPTZ NOT NULL,
  "transactionIndex" INTEGER NOT NULL,
  "methodId" CHAR(10) NOT NULL,
  "methodName" VARCHAR(40),
  "from" CHAR(42) NOT NULL,
  "to" CHAR(42) NOT NULL,
  "value" VARCHAR(24) NOT NULL,
  "gasPrice" VARCHAR(14) NOT NULL,
  "gas" INTEGER NOT NULL,
  PRIMARY KEY ("hash")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS transaction_input (
  "transactionHash" CHAR(66) NOT NULL,
  "input" VARCHAR(65535) NOT NULL,
  PRIMARY KEY ("transactionHash"),
  FOREIGN KEY ("transactionHash") REFERENCES transaction("hash") ON DELETE CASCADE
)`},
		{sql: `CREATE TABLE IF NOT EXISTS transaction_parameter (
  "transactionHash" CHAR(66) NOT NULL,
  "value" VARCHAR(65535) NOT NULL,
  "name" VARCHAR(40) NOT NULL,
  "type" VARCHAR(20) NOT NULL,
  "position" SMALLINT NOT NULL,
  FOREIGN KEY ("transactionHash") REFERENCES transaction("hash") ON DELETE CASCADE,
  UNIQUE ("transactionHash", "position")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS wrapped_transaction (
  "id" SERIAL PRIMARY KEY NOT NULL,
  "transactionHash" CHAR(66),
  "parentId" INTEGER,
  "blockNumber" INTEGER NOT NULL,
  "from" CHAR(42) NOT NULL,
  "to" CHAR(42),
  "value" VARCHAR(24) NOT NULL,
  "methodId" CHAR(10) NOT NULL,
  "methodName" VARCHAR(40),
  FOREIGN KEY ("transactionHash") REFERENCES transaction("hash") ON DELETE CASCADE,
  FOREIGN KEY ("parentId") REFERENCES wrapped_transaction("id") ON DELETE CASCADE
)`},
		{sql: `CREATE TABLE IF NOT EXISTS wrapped_transaction_input (
  "wrappedTransactionId" INTEGER NOT NULL,
  "input" VARCHAR(65535) NOT NULL,
  PRIMARY KEY ("wrappedTransactionId"),
  FOREIGN KEY ("wrappedTransactionId") REFERENCES wrapped_transaction("id") ON DELETE CASCADE
)`},
		{sql: `CREATE TABLE IF NOT EXISTS wrapped_transaction_parameter (
  "wrappedTransactionId" INTEGER NOT NULL,
  "value" VARCHAR(65535) NOT NULL,
  "name" VARCHAR(40) NOT NULL,
  "type" VARCHAR(20) NOT NULL,
  "position" SMALLINT NOT NULL,
  FOREIGN KEY ("wrappedTransactionId") REFERENCES wrapped_transaction("id") ON DELETE CASCADE,
  UNIQUE ("wrappedTransactionId", "position")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS event (
  "id" CHAR(66) NOT NULL,
  "blockNumber" INTEGER NOT NULL,
  "date" TIMESTAMPTZ NOT NULL,
  "transactionHash" CHAR(66) NOT NULL,
  "logIndex" INTEGER NOT NULL,
  "address" CHAR(42) NOT NULL,
  "eventName" VARCHAR(40),
  "methodId" CHAR(10) NOT NULL,
  "topic0" CHAR(66) NOT NULL,
  "topic1" CHAR(66),
  "topic2" CHAR(66),
  "topic3" CHAR(66),
  "data" VARCHAR(16384),
  PRIMARY KEY ("id")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS event_parameter (
  "eventId" CHAR(66) NOT NULL,
  "value" VARCHAR(512) NOT NULL,
  "name" VARCHAR(40) NOT NULL,
  "type" VARCHAR(20) NOT NULL,
  "position" SMALLINT NOT NULL,
  FOREIGN KEY ("eventId") REFERENCES event("id") ON DELETE CASCADE,
  UNIQUE ("eventId", "position")
)`},
	},
}

var structureSchema = schemaDefinition{
	tables: []string{
		TableERC725YSchema,
		TableContractInterface,
		TableMethodInterface,
		TableMethodParameter,
		TableConfig,
	},
	types: []string{typeMethodType, typeContractType},
	statements: []ddlStatement{
		{sql: `CREATE TYPE method_type AS ENUM ('event', 'function')`, tolerateExisting: true},
		{sql: createContractType, tolerateExisting: true},
		{sql: `CREATE TABLE IF NOT EXISTS erc725y_schema (
  "key" VARCHAR(66) NOT NULL,
  "name" VARCHAR(66) NOT NULL,
  "keyType" VARCHAR(20) NOT NULL,
  "valueType" VARCHAR(20) NOT NULL,
  "valueContent" VARCHAR(20) NOT NULL,
  PRIMARY KEY ("key")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS contract_interface (
  "id" CHAR(10) NOT NULL,
  "code" VARCHAR(20) NOT NULL,
  "name" VARCHAR(40) NOT NULL,
  "version" VARCHAR(10),
  "type" contract_type,
  PRIMARY KEY ("id")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS method_interface (
  "id" CHAR(10) NOT NULL,
  "hash" CHAR(66) NOT NULL,
  "name" VARCHAR(40) NOT NULL,
  "type" method_type NOT NULL,
  PRIMARY KEY ("id")
)`},
		{sql: `CREATE TABLE IF NOT EXISTS method_parameter (
  "methodId" CHAR(10) NOT NULL,
  "name" VARCHAR(40) NOT NULL,
  "type" VARCHAR(40) NOT NULL,
  "indexed" BOOLEAN NOT NULL,
  "position" INTEGER NOT NULL,
  FOREIGN KEY ("methodId") REFERENCES method_interface("id") ON DELETE CASCADE
)`},
		{sql: `CREATE TABLE IF NOT EXISTS config (
  "blockIteration" INTEGER NOT NULL DEFAULT 5000,
  "sleepBetweenIteration" INTEGER NOT NULL DEFAULT 2000,
  "nbrOfThreads" INTEGER NOT NULL DEFAULT 20,
  "paused" BOOLEAN NOT NULL DEFAULT false,
  "latestIndexedBlock" INTEGER NOT NULL DEFAULT 0,
  "latestIndexedEventBlock" INTEGER NOT NULL DEFAULT 0
)`},
	},
	seed: []string{
		`INSERT INTO config ("paused") SELECT false WHERE NOT EXISTS (SELECT 1 FROM config)`,
	},
}
