package boilerplate

import "fmt"

// JavaScript generates a CommonJS module skeleton.
func JavaScript(filename string) string {
	name := stem(filename)
	spoken := spokenName(name)
	cls := className(name)

	return fmt.Sprintf(`/**
 * %[1]s Module
 *
 * This module provides functionality for %[2]s.
 *
 * @date %[3]s
 */

'use strict';

/**
 * Main class for %[2]s functionality.
 */
class %[4]s {
    constructor() {
        this.initialized = true;
        console.log('Initializing %[2]s');
    }

    /**
     * Process the input data.
     * @param {any} data - Input data to process
     * @returns {any} Processed data
     * @throws {Error} If the instance is not initialized
     */
    process(data) {
        if (!this.initialized) {
            throw new Error('Instance not properly initialized');
        }

        // TODO: Implement processing logic
        console.log('Processing data');
        return data;
    }
}

function main() {
    console.log('Running %[2]s');
}

if (typeof module !== 'undefined' && module.exports) {
    module.exports = %[4]s;
}

if (require.main === module) {
    main();
}
`, titleWords(name), spoken, today(), cls)
}

// TypeScript generates a typed module skeleton with config and data
// interfaces.
func TypeScript(filename string) string {
	name := stem(filename)
	spoken := spokenName(name)
	cls := className(name)

	return fmt.Sprintf(`/**
 * %[1]s Module
 *
 * This module provides functionality for %[2]s.
 *
 * @date %[3]s
 */

interface %[4]sConfig {
    enabled: boolean;
    options?: Record<string, any>;
}

interface %[4]sData {
    id: string;
    value: any;
    timestamp: Date;
}

/**
 * Main class for %[2]s functionality.
 */
export class %[4]s {
    private initialized: boolean = false;
    private config: %[4]sConfig;

    constructor(config: %[4]sConfig = { enabled: true }) {
        this.config = config;
        this.initialized = true;
        console.log('Initializing %[2]s');
    }

    /**
     * Process the input data.
     * @param data Input data to process
     * @returns Processed data
     * @throws Error if the instance is not initialized
     */
    public process(data: %[4]sData): %[4]sData {
        if (!this.initialized) {
            throw new Error('Instance not properly initialized');
        }

        // TODO: Implement processing logic
        console.log('Processing data');
        return data;
    }

    public getConfig(): %[4]sConfig {
        return { ...this.config };
    }
}

export default %[4]s;
`, titleWords(name), spoken, today(), cls)
}
